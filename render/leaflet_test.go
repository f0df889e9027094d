package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLeafletCanvas_Save(t *testing.T) {
	canvas := NewLeafletCanvas()
	canvas.SetCenter(42.6977, 23.3219, 13)
	canvas.AddPolyline([]Point{{42.69, 23.32}, {42.70, 23.33}})
	canvas.AddPolyline(nil) // ignored

	path := filepath.Join(t.TempDir(), "routes_map_test.html")
	if err := canvas.Save(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	for _, want := range []string{
		"L.map",
		"42.6977",
		"23.3219",
		"[[42.69,23.32],[42.7,23.33]]",
		"L.polyline",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("artifact missing %q", want)
		}
	}
	if canvas.Lines() != 1 {
		t.Errorf("got %d lines, want 1 (empty polyline ignored)", canvas.Lines())
	}
}

func TestLeafletCanvas_SaveEmptyMap(t *testing.T) {
	canvas := NewLeafletCanvas()
	canvas.SetCenter(10, 20.5, 0) // zoom 0 keeps the default

	path := filepath.Join(t.TempDir(), "routes_map_empty.html")
	if err := canvas.Save(path); err != nil {
		t.Fatalf("a map with zero polylines is still valid: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[]") {
		t.Error("empty map should carry an empty polyline list")
	}
}

func TestLeafletCanvas_SaveBadPath(t *testing.T) {
	canvas := NewLeafletCanvas()
	if err := canvas.Save(filepath.Join(t.TempDir(), "no-such-dir", "map.html")); err == nil {
		t.Fatal("want error for unwritable path")
	}
}
