package gtfs

// Table names one of the required GTFS files.
type Table string

const (
	TableTrips     Table = "trips.txt"
	TableStopTimes Table = "stop_times.txt"
	TableRoutes    Table = "routes.txt"
	TableStops     Table = "stops.txt"
)

// RequiredTables lists the tables every feed directory is expected to carry.
var RequiredTables = []Table{TableTrips, TableStopTimes, TableRoutes, TableStops}

// Trip corresponds to a single row in trips.txt.
type Trip struct {
	TripID  string
	RouteID string
}

// StopTime corresponds to a single row in stop_times.txt. StopSequence
// defines the visiting order within a trip; it need not be contiguous or
// zero-based, only orderable.
type StopTime struct {
	TripID       string
	StopID       string
	StopSequence int
}

// Stop corresponds to a single row in stops.txt. Coordinates are nil when
// the row carried no parseable value; such stops still take part in segment
// aggregation and are only dropped at render time.
type Stop struct {
	StopID string
	Lat    *float64
	Lon    *float64
}

// Route corresponds to a single row in routes.txt.
type Route struct {
	RouteID string
}

// Feed holds the loaded tables of one feed directory. Present records which
// of the required tables actually loaded; the slices of absent tables are
// empty.
type Feed struct {
	Dir       string
	Trips     []Trip
	StopTimes []StopTime
	Routes    []Route
	Stops     []Stop
	Present   map[Table]bool
}

// Has reports whether a table was loaded.
func (f *Feed) Has(t Table) bool { return f.Present[t] }

// Complete reports whether all four required tables were loaded.
func (f *Feed) Complete() bool {
	for _, t := range RequiredTables {
		if !f.Present[t] {
			return false
		}
	}
	return true
}
