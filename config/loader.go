package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultZoom = 12

// Default returns the configuration used when no file is given: maps are
// written to the working directory at the default zoom, with no feeds.
func Default() AppConfig {
	return AppConfig{OutputDir: ".", Zoom: defaultZoom}
}

// Load reads and validates the application configuration from a YAML file
// and applies defaults for omitted fields.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Zoom == 0 {
		cfg.Zoom = defaultZoom
	}
	return cfg, nil
}
