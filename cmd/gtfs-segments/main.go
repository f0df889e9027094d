package main

import (
	"flag"
	"log"
	"os"

	lib "github.com/theoremus-urban-solutions/gtfs-segments"
	"github.com/theoremus-urban-solutions/gtfs-segments/config"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to YAML config")
	outDir := flag.String("out", "", "output directory for map artifacts (overrides config)")
	zoom := flag.Int("zoom", 0, "initial map zoom level (overrides config)")
	flag.Parse()

	lib.InitLogging()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if flag.NArg() == 0 {
			log.Fatalf("load config %s: %v", *configPath, err)
		}
		// Feed dirs on the command line work without a config file.
		cfg = config.Default()
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *zoom > 0 {
		cfg.Zoom = *zoom
	}

	feeds := cfg.Feeds
	if flag.NArg() > 0 {
		feeds = flag.Args()
	}
	if len(feeds) == 0 {
		log.Fatal("no feed directories given (config feeds: [] or positional args)")
	}

	results := lib.NewPipeline(cfg).Run(feeds)

	saved := 0
	for _, res := range results {
		if res.ArtifactPath != "" {
			saved++
		}
	}
	log.Printf("Done: %d/%d feeds produced a map artifact", saved, len(results))
	if saved == 0 {
		os.Exit(1)
	}
}
