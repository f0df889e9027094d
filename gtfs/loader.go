package gtfs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-segments/diag"
)

// LoadDir loads the four required tables from a feed directory. Absent
// files, tables missing required columns and malformed rows are recorded on
// the reporter and skipped; no error escapes for these conditions.
func LoadDir(dir string, rep *diag.Reporter) *Feed {
	f := &Feed{Dir: dir, Present: make(map[Table]bool, len(RequiredTables))}

	for _, t := range RequiredTables {
		path := filepath.Join(dir, string(t))
		if _, err := os.Stat(path); err != nil {
			rep.Add(diag.MissingFile, path)
			continue
		}
		if err := f.loadTable(t, path, rep); err != nil {
			var mce *MissingColumnError
			if errors.As(err, &mce) {
				rep.Add(diag.MissingColumn, fmt.Sprintf("%s:%s", mce.Table, mce.Column))
			} else {
				rep.Add(diag.TableUnreadable, path)
			}
			continue
		}
		f.Present[t] = true
	}

	if !f.Complete() {
		rep.Add(diag.IncompleteFeed, dir)
	}
	return f
}

func (f *Feed) loadTable(t Table, path string, rep *diag.Reporter) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	csvr := csv.NewReader(file)
	head, err := csvr.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", t, err)
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}

	cols := make(map[string]int, len(requiredColumns[t]))
	for _, col := range requiredColumns[t] {
		i := idx(col)
		if i < 0 {
			return &MissingColumnError{Table: t, Column: col}
		}
		cols[col] = i
	}

	for line := 2; ; line++ {
		row, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				rep.Add(diag.RowParse, fmt.Sprintf("%s line %d", t, line))
				continue
			}
			return err
		}
		f.consumeRow(t, cols, row, line, rep)
	}
	return nil
}

var requiredColumns = map[Table][]string{
	TableTrips:     {"trip_id", "route_id"},
	TableStopTimes: {"trip_id", "stop_id", "stop_sequence"},
	TableRoutes:    {"route_id"},
	TableStops:     {"stop_id", "stop_lat", "stop_lon"},
}

func (f *Feed) consumeRow(t Table, cols map[string]int, row []string, line int, rep *diag.Reporter) {
	switch t {
	case TableTrips:
		f.Trips = append(f.Trips, Trip{
			TripID:  row[cols["trip_id"]],
			RouteID: row[cols["route_id"]],
		})
	case TableStopTimes:
		seq, err := strconv.Atoi(strings.TrimSpace(row[cols["stop_sequence"]]))
		if err != nil {
			rep.Add(diag.RowParse, fmt.Sprintf("%s line %d", t, line))
			return
		}
		f.StopTimes = append(f.StopTimes, StopTime{
			TripID:       row[cols["trip_id"]],
			StopID:       row[cols["stop_id"]],
			StopSequence: seq,
		})
	case TableRoutes:
		f.Routes = append(f.Routes, Route{RouteID: row[cols["route_id"]]})
	case TableStops:
		s := Stop{StopID: row[cols["stop_id"]]}
		// Unparseable coordinates keep the stop; segments key on stop_id
		// alone and rendering drops coordinate-less stops itself.
		if lat, err := strconv.ParseFloat(strings.TrimSpace(row[cols["stop_lat"]]), 64); err == nil {
			if lon, err := strconv.ParseFloat(strings.TrimSpace(row[cols["stop_lon"]]), 64); err == nil {
				s.Lat, s.Lon = &lat, &lon
			}
		}
		f.Stops = append(f.Stops, s)
	}
}
