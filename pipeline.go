// Package gtfssegments orchestrates the feed-to-segment pipeline: it loads
// GTFS feed directories, aggregates segment frequencies and renders one map
// artifact per feed.
package gtfssegments

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/gtfs-segments/config"
	"github.com/theoremus-urban-solutions/gtfs-segments/diag"
	"github.com/theoremus-urban-solutions/gtfs-segments/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-segments/render"
	"github.com/theoremus-urban-solutions/gtfs-segments/segments"
)

// Pipeline processes feed directories sequentially and independently. No
// state is shared across feeds; a failure in one never stops the next.
type Pipeline struct {
	OutputDir string
	Zoom      int
	// NewCanvas builds the canvas each feed is drawn onto.
	NewCanvas func() render.Canvas
}

// FeedResult reports the outcome of one feed run. Err is set only when no
// map artifact could be produced; an aggregation-only failure (for example
// a missing routes.txt) leaves Segments nil but Err unset.
type FeedResult struct {
	Dir          string
	RunID        string
	ArtifactPath string
	Segments     segments.Counts
	Err          error
}

// NewPipeline builds a pipeline drawing on Leaflet canvases.
func NewPipeline(cfg config.AppConfig) *Pipeline {
	return &Pipeline{
		OutputDir: cfg.OutputDir,
		Zoom:      cfg.Zoom,
		NewCanvas: func() render.Canvas { return render.NewLeafletCanvas() },
	}
}

// Run processes the feed directories in order and returns one result per
// directory.
func (p *Pipeline) Run(dirs []string) []FeedResult {
	results := make([]FeedResult, 0, len(dirs))
	for _, dir := range dirs {
		results = append(results, p.processFeed(dir))
	}
	return results
}

func (p *Pipeline) processFeed(dir string) FeedResult {
	runID := uuid.New().String()
	rep := diag.NewReporter()
	res := FeedResult{Dir: dir, RunID: runID}
	defer rep.LogAll(dir, runID)

	log.Printf("Processing GTFS feed in directory %s (run %s)", dir, runID)
	feed := gtfs.LoadDir(dir, rep)

	counts, err := segments.Aggregate(feed, rep)
	if err == nil {
		res.Segments = counts
		busiest, n := counts.Most()
		log.Printf("Feed %s: %d trips over %d distinct segments; busiest segment has %d stops and %d trips",
			dir, counts.Total(), counts.Distinct(), len(busiest.Stops()), n)
	}

	canvas := p.NewCanvas()
	if err := render.DrawFeed(feed, canvas, p.Zoom, rep); err != nil {
		log.Printf("Failed to generate map for %s", dir)
		res.Err = err
		return res
	}

	path := filepath.Join(p.OutputDir, ArtifactName(dir))
	if err := canvas.Save(path); err != nil {
		rep.Add(diag.SaveFailed, path)
		res.Err = fmt.Errorf("save map for %s: %w", dir, err)
		return res
	}
	res.ArtifactPath = path
	log.Printf("Map saved as %q", path)
	return res
}

// ArtifactName derives the map file name from a feed directory.
func ArtifactName(dir string) string {
	return "routes_map_" + filepath.Base(filepath.Clean(dir)) + ".html"
}
