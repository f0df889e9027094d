package config

// AppConfig is the root configuration structure.
type AppConfig struct {
	// Feeds is the ordered list of GTFS feed directories to process.
	Feeds []string `yaml:"feeds" validate:"omitempty,dive,required"`
	// OutputDir is where map artifacts are written. Defaults to ".".
	OutputDir string `yaml:"outputDir"`
	// Zoom is the initial map zoom level. Defaults to 12.
	Zoom int `yaml:"zoom" validate:"gte=0,lte=19"`
}
