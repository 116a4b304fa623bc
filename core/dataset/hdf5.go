// core/dataset/hdf5.go
package dataset

import (
	"fmt"

	"gonum.org/v1/hdf5"
)

// Matrix is one HDF5 property matrix. The studio exports datasets with
// shape [1, n_props, n_samples]; the leading unit axis is dropped on load.
type Matrix struct {
	NProps   int
	NSamples int
	data     []float64
}

// Row returns property i across all samples.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.NSamples : (i+1)*m.NSamples]
}

// ReadHDF5 opens path and loads the named dataset as a Matrix.
func ReadHDF5(path, name string) (*Matrix, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("hdf5: open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := f.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("hdf5: %s: dataset %q: %w", path, name, err)
	}
	defer ds.Close()

	space := ds.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, fmt.Errorf("hdf5: %s: dataset %q: %w", path, name, err)
	}

	total := 1
	for _, d := range dims {
		total *= int(d)
	}
	buf := make([]float64, total)
	if err := ds.Read(&buf); err != nil {
		return nil, fmt.Errorf("hdf5: %s: dataset %q: %w", path, name, err)
	}
	m, err := shapeMatrix(dims, buf)
	if err != nil {
		return nil, fmt.Errorf("hdf5: %s: dataset %q: %w", path, name, err)
	}
	return m, nil
}

// shapeMatrix validates the [1, n_props, n_samples] export convention.
func shapeMatrix(dims []uint, data []float64) (*Matrix, error) {
	if len(dims) != 3 {
		return nil, fmt.Errorf("want rank 3 [1, n_props, n_samples], got rank %d", len(dims))
	}
	if dims[0] != 1 {
		return nil, fmt.Errorf("want leading unit axis, got %d", dims[0])
	}
	props, samples := int(dims[1]), int(dims[2])
	if props == 0 || samples == 0 {
		return nil, fmt.Errorf("empty dataset [%d, %d, %d]", dims[0], dims[1], dims[2])
	}
	if len(data) != props*samples {
		return nil, fmt.Errorf("have %d values, shape wants %d", len(data), props*samples)
	}
	return &Matrix{NProps: props, NSamples: samples, data: data}, nil
}
