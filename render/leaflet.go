package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
)

// DefaultZoom is the initial zoom level used when none is configured.
const DefaultZoom = 12

// Polyline style applied to every trip line.
const (
	lineColor   = "blue"
	lineWeight  = 2.5
	lineOpacity = 0.8
)

const leafletHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Routes</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.Lat}}, {{.Lon}}], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var lines = {{.Lines}};
lines.forEach(function (line) {
    L.polyline(line, {color: {{.Color}}, weight: {{.Weight}}, opacity: {{.Opacity}}}).addTo(map);
});
</script>
</body>
</html>
`

var leafletTmpl = template.Must(template.New("routes-map").Parse(leafletHTML))

// LeafletCanvas renders accumulated polylines into a standalone Leaflet
// HTML page. The zero value is usable; it centers on (0,0) at DefaultZoom
// until SetCenter is called.
type LeafletCanvas struct {
	lat   float64
	lon   float64
	zoom  int
	lines [][]Point
}

// NewLeafletCanvas creates an empty canvas.
func NewLeafletCanvas() *LeafletCanvas {
	return &LeafletCanvas{zoom: DefaultZoom}
}

func (c *LeafletCanvas) SetCenter(lat, lon float64, zoom int) {
	c.lat, c.lon = lat, lon
	if zoom > 0 {
		c.zoom = zoom
	}
}

func (c *LeafletCanvas) AddPolyline(points []Point) {
	if len(points) == 0 {
		return
	}
	c.lines = append(c.lines, points)
}

// Lines returns the number of polylines added so far.
func (c *LeafletCanvas) Lines() int { return len(c.lines) }

// Save writes the HTML page. A map with zero polylines is still valid.
func (c *LeafletCanvas) Save(path string) error {
	coords := make([][][2]float64, len(c.lines))
	for i, line := range c.lines {
		coords[i] = make([][2]float64, len(line))
		for j, p := range line {
			coords[i][j] = [2]float64{p.Lat, p.Lon}
		}
	}
	encoded, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("encode polylines: %w", err)
	}

	zoom := c.zoom
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	data := struct {
		Lat     float64
		Lon     float64
		Zoom    int
		Lines   template.JS
		Color   string
		Weight  float64
		Opacity float64
	}{c.lat, c.lon, zoom, template.JS(encoded), lineColor, lineWeight, lineOpacity}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map artifact: %w", err)
	}
	if err := leafletTmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("write map artifact: %w", err)
	}
	return f.Close()
}
