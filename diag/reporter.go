package diag

import (
	"fmt"
	"log"
	"strings"
)

// Condition codes recorded by the pipeline stages.
const (
	MissingFile       = "missing_file"
	TableUnreadable   = "table_unreadable"
	RowParse          = "row_parse"
	MissingColumn     = "missing_column"
	IncompleteFeed    = "incomplete_feed"
	MissingTable      = "missing_table"
	NoStopCoordinates = "no_stop_coordinates"
	TripNoCoordinates = "trip_no_coordinates"
	SaveFailed        = "save_failed"
)

// conditionInfo holds aggregated information about one condition code
type conditionInfo struct {
	count    int
	examples []string
}

// Reporter collects conditions during a feed run and outputs consolidated
// summaries. It is not safe for concurrent use; each feed run gets its own.
type Reporter struct {
	conditions map[string]*conditionInfo
	order      []string
}

// NewReporter creates an empty reporter
func NewReporter() *Reporter {
	return &Reporter{
		conditions: make(map[string]*conditionInfo),
	}
}

// Add records a condition occurrence with an example ID (a file path, a
// table:column pair, a trip_id, ...).
func (r *Reporter) Add(condition, exampleID string) {
	if r.conditions[condition] == nil {
		r.conditions[condition] = &conditionInfo{
			examples: make([]string, 0, 3),
		}
		r.order = append(r.order, condition)
	}

	info := r.conditions[condition]
	info.count++

	// Keep up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the number of occurrences recorded for a condition.
func (r *Reporter) Count(condition string) int {
	if info := r.conditions[condition]; info != nil {
		return info.count
	}
	return 0
}

// Examples returns the retained example IDs for a condition.
func (r *Reporter) Examples(condition string) []string {
	if info := r.conditions[condition]; info != nil {
		return info.examples
	}
	return nil
}

// Conditions returns the recorded condition codes in first-seen order.
func (r *Reporter) Conditions() []string {
	return r.order
}

// LogAll outputs all collected conditions in consolidated format
func (r *Reporter) LogAll(feedDir, runID string) {
	for _, condition := range r.order {
		log.Printf("%s", r.formatMessage(condition, feedDir, runID, r.conditions[condition]))
	}
}

// formatMessage creates a human-readable condition message
func (r *Reporter) formatMessage(condition, feedDir, runID string, info *conditionInfo) string {
	var description, action string

	switch condition {
	case MissingFile:
		description = "required table files not found"
		action = "Omitting those tables; feed may be incomplete"
	case TableUnreadable:
		description = "table files that could not be read"
		action = "Omitting those tables; feed may be incomplete"
	case RowParse:
		description = "malformed rows"
		action = "Skipping those rows; tables otherwise loaded"
	case MissingColumn:
		description = "tables missing required columns"
		action = "Omitting those tables; feed may be incomplete"
	case IncompleteFeed:
		description = "missing one or more required tables"
		action = "Downstream stages enforce their own table requirements"
	case MissingTable:
		description = "operations missing a required table"
		action = "Returning empty results for those operations"
	case NoStopCoordinates:
		description = "no stop with resolvable coordinates"
		action = "Skipping map generation"
	case TripNoCoordinates:
		description = "trips with no resolvable coordinates"
		action = "Drawing the map without those trips"
	case SaveFailed:
		description = "map artifacts that could not be written"
		action = "Continuing with remaining feeds"
	default:
		description = "unknown condition"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Feed %s (run %s) has %s (%d occurrences). %s. Examples: %s",
		feedDir, runID, description, info.count, action, examplesStr)
}
