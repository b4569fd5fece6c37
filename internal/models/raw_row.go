package models

// RawRow is one row of the exported log table, reduced to the three columns
// the pipeline reads. Missing columns are empty strings.
type RawRow struct {
	Raw         string // free-text log line
	Time        string // timestamp as exported
	Environment string // deployment / index tag
}
