// core/dataset/csv.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"scaffold-core/series"
)

// Table is one loaded CSV file. Columns are either numeric or categorical;
// a column is numeric when every non-empty cell parses as a float. All
// columns share the same length.
type Table struct {
	Names []string
	cols  map[string]*column
	rows  int
}

type column struct {
	numeric bool
	nums    []float64
	strs    []string
}

// ReadCSV loads a table from path. The first row is the header.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSVFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSVFrom loads a table from r.
func ReadCSVFrom(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv: need a header row and at least one data row")
	}

	header := records[0]
	t := &Table{
		Names: make([]string, len(header)),
		cols:  make(map[string]*column, len(header)),
		rows:  len(records) - 1,
	}
	raw := make([][]string, len(header))
	for j, name := range header {
		name = strings.TrimSpace(name)
		t.Names[j] = name
		raw[j] = make([]string, 0, t.rows)
	}
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("csv: row %d has %d fields, header has %d", i+2, len(rec), len(header))
		}
		for j, cell := range rec {
			raw[j] = append(raw[j], strings.TrimSpace(cell))
		}
	}

	for j, name := range t.Names {
		t.cols[name] = buildColumn(raw[j])
	}
	return t, nil
}

func buildColumn(cells []string) *column {
	nums := make([]float64, len(cells))
	numeric := true
	for i, c := range cells {
		if c == "" {
			numeric = false
			break
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = v
	}
	if numeric {
		return &column{numeric: true, nums: nums, strs: cells}
	}
	return &column{numeric: false, strs: cells}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.rows }

// Numeric reports whether the named column parsed as numeric.
func (t *Table) Numeric(name string) bool {
	c, ok := t.cols[name]
	return ok && c.numeric
}

// Float returns a numeric column by name.
func (t *Table) Float(name string) ([]float64, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("csv: no column %q", name)
	}
	if !c.numeric {
		return nil, fmt.Errorf("csv: column %q is not numeric", name)
	}
	return c.nums, nil
}

// Strings returns any column by name as raw cells.
func (t *Table) Strings(name string) ([]string, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("csv: no column %q", name)
	}
	return c.strs, nil
}

// Series wraps a numeric column as a named series.
func (t *Table) Series(name string) (series.Series, error) {
	v, err := t.Float(name)
	if err != nil {
		return series.Series{}, err
	}
	return series.Series{Name: name, Values: v}, nil
}

// NumericNames returns the numeric column names in header order.
func (t *Table) NumericNames() []string {
	var out []string
	for _, n := range t.Names {
		if t.cols[n].numeric {
			out = append(out, n)
		}
	}
	return out
}
