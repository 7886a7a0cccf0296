package config

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// Config is the top-level nailbar configuration, corresponding to .nailbar.yml.
type Config struct {
	Port           int            `yaml:"port" koanf:"port"`
	BaseURL        string         `yaml:"base_url" koanf:"base_url"`
	ContentFile    string         `yaml:"content_file" koanf:"content_file"`
	GalleryDir     string         `yaml:"gallery_dir" koanf:"gallery_dir"`
	GalleryPattern string         `yaml:"gallery_pattern" koanf:"gallery_pattern"`
	ExportDir      string         `yaml:"export_dir" koanf:"export_dir"`
	Carousel       CarouselConfig `yaml:"carousel" koanf:"carousel"`
	Reveal         RevealConfig   `yaml:"reveal" koanf:"reveal"`
	HTTP           HTTPConfig     `yaml:"http" koanf:"http"`
	Log            LogConfig      `yaml:"log" koanf:"log"`
}

// CarouselConfig holds gallery carousel settings.
type CarouselConfig struct {
	IntervalMS int `yaml:"interval_ms" koanf:"interval_ms"`
}

// RevealConfig holds scroll-reveal settings.
type RevealConfig struct {
	Threshold float64 `yaml:"threshold" koanf:"threshold"`
}

// HTTPConfig holds web server settings.
type HTTPConfig struct {
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	CacheTTLSeconds int      `yaml:"cache_ttl_seconds" koanf:"cache_ttl_seconds"`
	Compress        bool     `yaml:"compress" koanf:"compress"`
	Metrics         bool     `yaml:"metrics" koanf:"metrics"`
	Live            bool     `yaml:"live" koanf:"live"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
