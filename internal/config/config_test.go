package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Carousel.IntervalMS != 5000 {
		t.Errorf("expected default carousel interval 5000ms, got %d", cfg.Carousel.IntervalMS)
	}
	if cfg.Reveal.Threshold != 0.1 {
		t.Errorf("expected default reveal threshold 0.1, got %v", cfg.Reveal.Threshold)
	}
	if cfg.GalleryPattern != DefaultGalleryPattern {
		t.Errorf("expected default gallery pattern %q, got %q", DefaultGalleryPattern, cfg.GalleryPattern)
	}
	if !cfg.HTTP.Live {
		t.Error("expected live sessions enabled by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.nailbar.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.GalleryDir = "uploads"
	original.HTTP.AllowedOrigins = []string{"https://pacesnailbar.com"}
	original.Log.Format = LogFormatJSON
	original.Reveal.Threshold = 0.25

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.GalleryDir != original.GalleryDir {
		t.Errorf("gallery_dir: got %q, want %q", loaded.GalleryDir, original.GalleryDir)
	}
	if loaded.Log.Format != original.Log.Format {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, original.Log.Format)
	}
	if loaded.Reveal.Threshold != original.Reveal.Threshold {
		t.Errorf("reveal.threshold: got %v, want %v", loaded.Reveal.Threshold, original.Reveal.Threshold)
	}
	if len(loaded.HTTP.AllowedOrigins) != 1 || loaded.HTTP.AllowedOrigins[0] != "https://pacesnailbar.com" {
		t.Errorf("http.allowed_origins: got %v", loaded.HTTP.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("NAILBAR_PORT", "9191")
	t.Setenv("NAILBAR_LOG__LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got port %d, want 9191", loaded.Port)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("nested env override failed: got level %q, want debug", loaded.Log.Level)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("port: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"NAILBAR_PORT":                    "port",
		"NAILBAR_LOG__LEVEL":              "log.level",
		"NAILBAR_HTTP__CACHE_TTL_SECONDS": "http.cache_ttl_seconds",
		"NAILBAR_GALLERY_DIR":             "gallery_dir",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"bad gallery pattern", func(c *Config) { c.GalleryDir = "uploads"; c.GalleryPattern = "[" }},
		{"negative interval", func(c *Config) { c.Carousel.IntervalMS = -1 }},
		{"threshold above one", func(c *Config) { c.Reveal.Threshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Reveal.Threshold = -0.1 }},
		{"NaN threshold", func(c *Config) { c.Reveal.Threshold = math.NaN() }},
		{"negative cache ttl", func(c *Config) { c.HTTP.CacheTTLSeconds = -5 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"empty export dir", func(c *Config) { c.ExportDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"80", "8080", " 443 "} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "0", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"https://pacesnailbar.com", []string{"https://pacesnailbar.com"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := SplitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("SplitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("SplitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
