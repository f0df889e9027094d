package segments

import (
	"errors"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-segments/diag"
	"github.com/theoremus-urban-solutions/gtfs-segments/gtfs"
)

// keySep joins stop IDs inside a Key. The unit separator cannot survive in
// a CSV-sourced stop_id, so elementwise tuple equality reduces to string
// equality of the joined form.
const keySep = "\x1f"

// Key identifies one ordered stop sequence. Two trips map to the same Key
// exactly when their ordered stop_id tuples are equal; route_id plays no
// part in identity.
type Key string

// KeyOf builds the Key for an ordered list of stop IDs.
func KeyOf(stopIDs []string) Key {
	return Key(strings.Join(stopIDs, keySep))
}

// Stops recovers the ordered stop IDs the Key was built from.
func (k Key) Stops() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), keySep)
}

// Counts maps each distinct stop sequence to the number of trips running it.
type Counts map[Key]int

// Distinct returns the number of distinct segments.
func (c Counts) Distinct() int { return len(c) }

// Total returns the number of trips counted.
func (c Counts) Total() int {
	n := 0
	for _, count := range c {
		n += count
	}
	return n
}

// Most returns the segment shared by the most trips. Ties break toward the
// lexicographically smallest key so the result is deterministic.
func (c Counts) Most() (Key, int) {
	var best Key
	bestCount := 0
	for k, count := range c {
		if count > bestCount || (count == bestCount && k < best) {
			best, bestCount = k, count
		}
	}
	return best, bestCount
}

// Aggregate computes segment counts for a feed. Trips with zero stop_time
// rows contribute the empty segment, which is counted like any other. A
// missing required table is recorded on the reporter and returned along
// with empty counts; processing order of trips cannot affect the result.
func Aggregate(feed *gtfs.Feed, rep *diag.Reporter) (Counts, error) {
	groups, err := Resolve(feed, ForAggregation)
	if err != nil {
		var mte *gtfs.MissingTableError
		if errors.As(err, &mte) {
			rep.Add(diag.MissingTable, string(mte.Table))
		}
		return Counts{}, err
	}

	counts := make(Counts, len(groups))
	for _, g := range groups {
		ids := make([]string, len(g.Rows))
		for i, row := range g.Rows {
			ids[i] = row.StopID
		}
		counts[KeyOf(ids)]++
	}
	return counts, nil
}
