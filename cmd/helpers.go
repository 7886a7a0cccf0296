package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/pacesnailbar/nailbar/internal/config"
	"github.com/pacesnailbar/nailbar/internal/content"
	"github.com/pacesnailbar/nailbar/internal/logging"
	"github.com/pacesnailbar/nailbar/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `nailbar init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  string(cfg.Log.Format),
		Verbose: verbose,
	})
}

// loadContent reads the content file and, when a gallery directory is
// configured, replaces the gallery with the images found there.
func loadContent(cfg *config.Config, logger *zap.Logger) (*content.Content, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	if cfg.GalleryDir == "" {
		return c, nil
	}

	images, err := content.DiscoverGallery(cfg.GalleryDir, cfg.GalleryPattern, "uploads")
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		logger.Warn("no gallery images found, keeping content gallery",
			zap.String("dir", cfg.GalleryDir),
			zap.String("pattern", cfg.GalleryPattern),
		)
		return c, nil
	}
	logger.Debug("gallery discovered", zap.String("dir", cfg.GalleryDir), zap.Int("images", len(images)))
	c.Gallery = images
	return c, nil
}

func siteOptions(cfg *config.Config) site.Options {
	return site.Options{
		Threshold:  cfg.Reveal.Threshold,
		Interval:   time.Duration(cfg.Carousel.IntervalMS) * time.Millisecond,
		CacheTTL:   time.Duration(cfg.HTTP.CacheTTLSeconds) * time.Second,
		Live:       cfg.HTTP.Live,
		UploadsDir: cfg.GalleryDir,
	}
}

// openBrowser opens the URL in the default browser.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
