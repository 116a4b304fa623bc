package version

// Version is stamped into usage output and reports.
const Version = "0.4.0"
