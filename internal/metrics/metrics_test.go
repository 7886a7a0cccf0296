package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err, "registering twice must fail")

	m.RecordRender("home", nil)
	m.RecordRender("home", errors.New("boom"))
	m.RecordCacheHit()
	m.RecordBooking("manicure", nil)
	m.RecordBooking("haircut", errors.New("invalid"))
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.RecordSlide("auto")
	m.RecordReveal("gallery")
	m.RecordDegraded()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageRenders.WithLabelValues("home", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageRenders.WithLabelValues("home", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingLinks.WithLabelValues("invalid", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LiveSessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LiveSessionsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CarouselChanges.WithLabelValues("auto")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reveals.WithLabelValues("gallery")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DegradedSessions))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *SiteMetrics
	m.RecordRender("home", nil)
	m.RecordCacheHit()
	m.RecordBooking("manicure", nil)
	m.SessionOpened()
	m.SessionClosed()
	m.RecordSlide("next")
	m.RecordReveal("about")
	m.RecordDegraded()
}

func TestHandlerExposesMetrics(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)
	m.RecordSlide("next")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `nailbar_carousel_changes_total{cause="next"} 1`))
}
