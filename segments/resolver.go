package segments

import (
	"sort"

	"github.com/theoremus-urban-solutions/gtfs-segments/gtfs"
)

// TripStopRow is one stop visit of one trip, joined across the loaded
// tables. RouteID is empty when the stop_time's trip is not in trips.txt;
// coordinates are nil when the stop is unknown or carries none.
type TripStopRow struct {
	TripID       string
	StopSequence int
	StopID       string
	RouteID      string
	Lat          *float64
	Lon          *float64
}

// TripGroup holds one trip's rows in visiting order.
type TripGroup struct {
	TripID string
	Rows   []TripStopRow
}

// Requirement names the table set an operation needs from a feed.
// Aggregation and rendering declare their own minima; they do not share one
// fixed precondition.
type Requirement int

const (
	// ForAggregation requires trips, stop_times and routes.
	ForAggregation Requirement = iota
	// ForRendering requires trips, stop_times and stops, and joins stop
	// coordinates onto each row.
	ForRendering
)

func (r Requirement) tables() []gtfs.Table {
	if r == ForRendering {
		return []gtfs.Table{gtfs.TableTrips, gtfs.TableStopTimes, gtfs.TableStops}
	}
	return []gtfs.Table{gtfs.TableTrips, gtfs.TableStopTimes, gtfs.TableRoutes}
}

// Resolve joins stop_times onto trips (left join on trip_id) and, for
// rendering, onto stops (left join on stop_id), and returns one group per
// trip_id with rows in ascending stop_sequence order. The sort is stable, so
// rows sharing a (trip_id, stop_sequence) keep their file order. Every trip
// in trips.txt yields a group, even with zero stop_time rows. Groups come
// back sorted by trip_id for reproducibility.
//
// A member of the requirement's table set that did not load fails the whole
// resolution with *gtfs.MissingTableError.
func Resolve(feed *gtfs.Feed, req Requirement) ([]TripGroup, error) {
	for _, t := range req.tables() {
		if !feed.Has(t) {
			return nil, &gtfs.MissingTableError{Table: t}
		}
	}

	tripRoute := make(map[string]string, len(feed.Trips))
	for _, t := range feed.Trips {
		tripRoute[t.TripID] = t.RouteID
	}

	var stopByID map[string]gtfs.Stop
	if req == ForRendering {
		stopByID = make(map[string]gtfs.Stop, len(feed.Stops))
		for _, s := range feed.Stops {
			stopByID[s.StopID] = s
		}
	}

	rowsByTrip := make(map[string][]TripStopRow, len(feed.Trips))
	for _, t := range feed.Trips {
		rowsByTrip[t.TripID] = nil
	}
	for _, st := range feed.StopTimes {
		row := TripStopRow{
			TripID:       st.TripID,
			StopSequence: st.StopSequence,
			StopID:       st.StopID,
			RouteID:      tripRoute[st.TripID],
		}
		if stopByID != nil {
			if s, ok := stopByID[st.StopID]; ok {
				row.Lat, row.Lon = s.Lat, s.Lon
			}
		}
		rowsByTrip[st.TripID] = append(rowsByTrip[st.TripID], row)
	}

	groups := make([]TripGroup, 0, len(rowsByTrip))
	for tripID, rows := range rowsByTrip {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].StopSequence < rows[j].StopSequence
		})
		groups = append(groups, TripGroup{TripID: tripID, Rows: rows})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].TripID < groups[j].TripID })
	return groups, nil
}
