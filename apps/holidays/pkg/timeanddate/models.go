package timeanddate

import "time"

// Entry is a row of the yearly table that could be turned into a date.
type Entry struct {
	Name string
	Date time.Time
}

// SkippedRow is a row that looked like a holiday but could not be read.
type SkippedRow struct {
	Row    int
	Reason string
}

type Table struct {
	Year    int
	Entries []Entry
	Skipped []SkippedRow
}
