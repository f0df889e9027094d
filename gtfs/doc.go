// Package gtfs loads GTFS static tables from feed directories.
//
// A feed directory is expected to contain the four required tables
// (trips.txt, stop_times.txt, routes.txt, stops.txt) as CSV files. Loading
// is tolerant: absent files, missing required columns and malformed rows
// are recorded on a diag.Reporter and skipped, never raised. Callers check
// table presence per operation with Feed.Has.
package gtfs
