// Package segments reconstructs per-trip stop sequences from loaded GTFS
// tables and aggregates how often each distinct sequence occurs.
package segments
