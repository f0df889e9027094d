package render

// Point is a geographic coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// Canvas is the drawing surface trips are painted onto. Implementations
// accumulate state in memory until Save.
type Canvas interface {
	SetCenter(lat, lon float64, zoom int)
	AddPolyline(points []Point)
	Save(path string) error
}
