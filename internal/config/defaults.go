package config

// DefaultGalleryPattern matches the image files picked up from gallery_dir.
const DefaultGalleryPattern = "**/*.{png,jpg,jpeg,webp,gif}"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		ContentFile:    "content.yml",
		GalleryPattern: DefaultGalleryPattern,
		ExportDir:      "public",
		Carousel: CarouselConfig{
			IntervalMS: 5000,
		},
		Reveal: RevealConfig{
			Threshold: 0.1,
		},
		HTTP: HTTPConfig{
			AllowedOrigins:  []string{"http://localhost:*", "http://127.0.0.1:*"},
			CacheTTLSeconds: 300,
			Compress:        true,
			Metrics:         true,
			Live:            true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
