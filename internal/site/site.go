// Package site serves the salon page: rendering, the booking form
// endpoints, static assets, live sessions and static export.
package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/pacesnailbar/nailbar/internal/booking"
	"github.com/pacesnailbar/nailbar/internal/carousel"
	"github.com/pacesnailbar/nailbar/internal/content"
	"github.com/pacesnailbar/nailbar/internal/metrics"
	"github.com/pacesnailbar/nailbar/internal/reveal"
	"github.com/pacesnailbar/nailbar/internal/site/components"
)

//go:embed static/*
var staticFiles embed.FS

// Options configures a Site.
type Options struct {
	// Threshold is the visible fraction that reveals a section.
	Threshold float64
	// Interval is the carousel auto-advance period of live sessions.
	Interval time.Duration
	// CacheTTL is how long rendered pages are reused. Zero disables the cache.
	CacheTTL time.Duration
	// Live enables the /ws/live endpoint.
	Live bool
	// UploadsDir, when set, is served under /uploads/.
	UploadsDir string
}

// Site renders and serves one salon's page.
type Site struct {
	content      *content.Content
	about        string
	composer     *booking.Composer
	targets      map[string]bool
	opts         Options
	assetVersion string

	logger  *zap.Logger
	metrics *metrics.SiteMetrics
	cache   *gocache.Cache

	// ctx ends every live session on Close.
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	closed   bool
	sessions sync.WaitGroup
}

// New validates the content and prepares a Site. logger and m may be nil.
func New(c *content.Content, opts Options, logger *zap.Logger, m *metrics.SiteMetrics) (*Site, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	about, err := c.RenderAbout()
	if err != nil {
		return nil, err
	}
	version, err := hashAssets()
	if err != nil {
		return nil, fmt.Errorf("hashing static assets: %w", err)
	}

	if opts.Threshold == 0 {
		opts.Threshold = reveal.DefaultThreshold
	}
	if opts.Interval == 0 {
		opts.Interval = carousel.DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Site{
		content:      c,
		about:        string(about),
		composer:     booking.NewComposer(c),
		targets:      make(map[string]bool),
		opts:         opts,
		assetVersion: version,
		logger:       logger,
		metrics:      m,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	for _, id := range components.RevealTargets(c) {
		s.targets[id] = true
	}
	if opts.CacheTTL > 0 {
		// No janitor: keys are bounded by the gallery size and Get
		// honours expiry on its own.
		s.cache = gocache.New(opts.CacheTTL, 0)
	}
	return s, nil
}

// Content returns the content the site renders.
func (s *Site) Content() *content.Content { return s.content }

// Close ends all live sessions and waits for them to unmount. New sessions
// are refused afterwards.
func (s *Site) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.sessions.Wait()
}

func (s *Site) trackSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.sessions.Add(1)
	return true
}

// page builds the render config with slide active.
func (s *Site) page(slide int, assetBase string) (components.PageConfig, error) {
	ctl, err := carousel.New(s.content.Gallery, carousel.WithStart(slide))
	if err != nil {
		return components.PageConfig{}, err
	}
	// Neighbours for the no-script arrows.
	ctl.Prev()
	prev := ctl.Active()
	ctl.Next()
	ctl.Next()
	next := ctl.Active()

	return components.PageConfig{
		Content:      s.content,
		AboutHTML:    s.about,
		Active:       slide,
		Prev:         prev,
		Next:         next,
		Threshold:    s.opts.Threshold,
		Live:         s.opts.Live,
		AssetBase:    assetBase,
		AssetVersion: s.assetVersion,
		Form:         components.BookingForm{Options: s.composer.Options},
	}, nil
}

// render writes the page to a buffer so a failed render never produces a
// partial response.
func (s *Site) render(p components.PageConfig) ([]byte, error) {
	var buf bytes.Buffer
	err := components.Home(p).Render(&buf)
	s.metrics.RecordRender("home", err)
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

func hashAssets() (string, error) {
	h := sha256.New()
	err := fs.WalkDir(staticFiles, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := staticFiles.ReadFile(path)
		if err != nil {
			return err
		}
		h.Write([]byte(path))
		h.Write(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil))[:12], nil
}
