// Package metrics provides the Prometheus collectors for the site.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SiteMetrics contains all Prometheus metrics exposed by the site.
// All methods are safe to call on a nil *SiteMetrics.
type SiteMetrics struct {
	PageRenders       *prometheus.CounterVec
	PageCacheHits     prometheus.Counter
	BookingLinks      *prometheus.CounterVec
	LiveSessions      prometheus.Gauge
	LiveSessionsTotal prometheus.Counter
	CarouselChanges   *prometheus.CounterVec
	Reveals           *prometheus.CounterVec
	DegradedSessions  prometheus.Counter
	registry          *prometheus.Registry
}

// New creates the site metrics and registers them on registry.
func New(registry *prometheus.Registry) (*SiteMetrics, error) {
	m := &SiteMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register site metrics: %w", err)
	}
	return m, nil
}

func (m *SiteMetrics) initMetrics() {
	m.PageRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nailbar_page_renders_total",
		Help: "Total number of page renders by page and result",
	}, []string{"page", "result"})

	m.PageCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nailbar_page_cache_hits_total",
		Help: "Total number of pages served from the render cache",
	})

	m.BookingLinks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nailbar_booking_links_total",
		Help: "Total number of booking link requests by service and result",
	}, []string{"service", "result"})

	m.LiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nailbar_live_sessions",
		Help: "Number of currently mounted live page sessions",
	})

	m.LiveSessionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nailbar_live_sessions_total",
		Help: "Total number of live page sessions opened",
	})

	m.CarouselChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nailbar_carousel_changes_total",
		Help: "Total number of gallery slide changes by cause",
	}, []string{"cause"})

	m.Reveals = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nailbar_section_reveals_total",
		Help: "Total number of section reveals by section",
	}, []string{"section"})

	m.DegradedSessions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nailbar_reveal_degraded_sessions_total",
		Help: "Total number of sessions whose client had no visibility observer",
	})
}

// Collect implements the prometheus.Collector interface.
func (m *SiteMetrics) Collect(ch chan<- prometheus.Metric) {
	m.PageRenders.Collect(ch)
	ch <- m.PageCacheHits
	m.BookingLinks.Collect(ch)
	ch <- m.LiveSessions
	ch <- m.LiveSessionsTotal
	m.CarouselChanges.Collect(ch)
	m.Reveals.Collect(ch)
	ch <- m.DegradedSessions
}

// Describe implements the prometheus.Collector interface.
func (m *SiteMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.PageRenders.Describe(ch)
	ch <- m.PageCacheHits.Desc()
	m.BookingLinks.Describe(ch)
	ch <- m.LiveSessions.Desc()
	ch <- m.LiveSessionsTotal.Desc()
	m.CarouselChanges.Describe(ch)
	m.Reveals.Describe(ch)
	ch <- m.DegradedSessions.Desc()
}

// Handler returns the /metrics handler for the registry.
func (m *SiteMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRender counts a page render.
func (m *SiteMetrics) RecordRender(page string, err error) {
	if m == nil {
		return
	}
	m.PageRenders.WithLabelValues(page, result(err)).Inc()
}

// RecordCacheHit counts a page served from cache.
func (m *SiteMetrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.PageCacheHits.Inc()
}

// RecordBooking counts a booking link request.
func (m *SiteMetrics) RecordBooking(service string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		// Invalid requests can carry arbitrary service values.
		service = "invalid"
	}
	m.BookingLinks.WithLabelValues(service, result(err)).Inc()
}

// SessionOpened marks a live session mount.
func (m *SiteMetrics) SessionOpened() {
	if m == nil {
		return
	}
	m.LiveSessions.Inc()
	m.LiveSessionsTotal.Inc()
}

// SessionClosed marks a live session unmount.
func (m *SiteMetrics) SessionClosed() {
	if m == nil {
		return
	}
	m.LiveSessions.Dec()
}

// RecordSlide counts a carousel index change.
func (m *SiteMetrics) RecordSlide(cause string) {
	if m == nil {
		return
	}
	m.CarouselChanges.WithLabelValues(cause).Inc()
}

// RecordReveal counts a section reveal.
func (m *SiteMetrics) RecordReveal(section string) {
	if m == nil {
		return
	}
	m.Reveals.WithLabelValues(section).Inc()
}

// RecordDegraded counts a session running without visibility observation.
func (m *SiteMetrics) RecordDegraded() {
	if m == nil {
		return
	}
	m.DegradedSessions.Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
