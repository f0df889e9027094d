package render

import (
	"errors"

	"github.com/theoremus-urban-solutions/gtfs-segments/diag"
	"github.com/theoremus-urban-solutions/gtfs-segments/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-segments/segments"
)

// Centroid returns the unweighted arithmetic mean of all stop coordinates.
// Stops without resolvable coordinates are left out of the mean; ok is
// false when no stop contributes.
func Centroid(stops []gtfs.Stop) (lat, lon float64, ok bool) {
	n := 0
	for _, s := range stops {
		if s.Lat == nil || s.Lon == nil {
			continue
		}
		lat += *s.Lat
		lon += *s.Lon
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return lat / float64(n), lon / float64(n), true
}

// DrawFeed paints one polyline per trip onto the canvas, centered on the
// feed's stop centroid. Trips whose every stop lacks coordinates are
// skipped with a diagnostic; a feed drawing zero lines is still a valid
// map. A missing required table or a feed with no resolvable stop
// coordinates yields an error and a diagnostic, and nothing is drawn.
func DrawFeed(feed *gtfs.Feed, canvas Canvas, zoom int, rep *diag.Reporter) error {
	groups, err := segments.Resolve(feed, segments.ForRendering)
	if err != nil {
		var mte *gtfs.MissingTableError
		if errors.As(err, &mte) {
			rep.Add(diag.MissingTable, string(mte.Table))
		}
		return err
	}

	lat, lon, ok := Centroid(feed.Stops)
	if !ok {
		rep.Add(diag.NoStopCoordinates, feed.Dir)
		return errors.New("no stop with resolvable coordinates")
	}
	canvas.SetCenter(lat, lon, zoom)

	for _, g := range groups {
		points := make([]Point, 0, len(g.Rows))
		for _, row := range g.Rows {
			if row.Lat == nil || row.Lon == nil {
				continue
			}
			points = append(points, Point{Lat: *row.Lat, Lon: *row.Lon})
		}
		if len(points) == 0 {
			rep.Add(diag.TripNoCoordinates, g.TripID)
			continue
		}
		canvas.AddPolyline(points)
	}
	return nil
}
