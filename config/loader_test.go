package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
feeds:
  - feeds/samtrans
  - feeds/muni
outputDir: out
zoom: 14
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Feeds) != 2 || cfg.Feeds[0] != "feeds/samtrans" {
		t.Errorf("feeds = %v", cfg.Feeds)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("outputDir = %q, want out", cfg.OutputDir)
	}
	if cfg.Zoom != 14 {
		t.Errorf("zoom = %d, want 14", cfg.Zoom)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "feeds:\n  - feeds/vta\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "." {
		t.Errorf("outputDir default = %q, want .", cfg.OutputDir)
	}
	if cfg.Zoom != defaultZoom {
		t.Errorf("zoom default = %d, want %d", cfg.Zoom, defaultZoom)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zoom out of range", "zoom: 99\n"},
		{"empty feed entry", "feeds:\n  - \"\"\n"},
		{"bad yaml", "feeds: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("want error for missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputDir != "." || cfg.Zoom != defaultZoom || len(cfg.Feeds) != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
