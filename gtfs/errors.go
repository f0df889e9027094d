package gtfs

import "fmt"

// MissingTableError reports that an operation requires a table the feed did
// not load. It is recovered at the operation boundary, never past it.
type MissingTableError struct {
	Table Table
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("missing required table %s", e.Table)
}

// MissingColumnError reports that a table file lacks a required column.
// Detected once at load time; the table is omitted from the feed.
type MissingColumnError struct {
	Table  Table
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table %s missing required column %s", e.Table, e.Column)
}
