package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/pacesnailbar/nailbar/internal/booking"
	"github.com/pacesnailbar/nailbar/internal/content"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	return sb.String()
}

func testPage() PageConfig {
	c := content.Default()
	return PageConfig{
		Content:   c,
		AboutHTML: "<p>About us</p>",
		Active:    0,
		Prev:      len(c.Gallery) - 1,
		Next:      1,
		Threshold: 0.1,
		Live:      true,
		AssetBase: "/static",
		Form:      BookingForm{Options: c.ServiceOptions()},
	}
}

func TestHomeRendersEverySection(t *testing.T) {
	html := render(t, Home(testPage()))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	for _, id := range []string{"home", "services", "gallery", "about", "contact"} {
		assert.Contains(t, html, `id="`+id+`"`)
	}
	assert.Contains(t, html, `data-live="true"`)
	assert.Contains(t, html, `href="/static/site.css"`)
	assert.Contains(t, html, "<p>About us</p>")
}

func TestServicesListPrices(t *testing.T) {
	c := content.Default()
	html := render(t, ServicesSection(c.ActiveServices(), 0.1))

	for _, s := range c.ActiveServices() {
		assert.Contains(t, html, s.Title)
		assert.Contains(t, html, `data-reveal="`+ServiceTarget(s)+`"`)
		for _, sub := range s.SubServices {
			assert.Contains(t, html, sub.Price)
		}
	}
	assert.Contains(t, html, "transition-delay: 0.2s")
	assert.Contains(t, html, "transition-delay: 0.8s")
	assert.Contains(t, html, `data-threshold="0.1"`)
}

func TestGalleryMarksActiveSlide(t *testing.T) {
	p := testPage()
	p.Active, p.Prev, p.Next = 3, 2, 4
	html := render(t, GallerySection(p))

	assert.Equal(t, len(p.Content.Gallery), strings.Count(html, `data-index=`))
	assert.Equal(t, 1, strings.Count(html, `class="slide active"`))
	assert.Equal(t, 1, strings.Count(html, `class="dot active"`))
	assert.Equal(t, 1, strings.Count(html, `class="thumb active"`))
	assert.Contains(t, html, `<div class="slide active" data-index="3">`)
	assert.Contains(t, html, `href="?slide=2#gallery" class="carousel-btn prev"`)
	assert.Contains(t, html, `href="?slide=4#gallery" class="carousel-btn next"`)
}

func TestBookingFormShowsErrors(t *testing.T) {
	f := BookingForm{
		Values:  booking.Request{Name: "Jane", Service: "pedicure"},
		Errors:  map[string]string{"email": "is required"},
		Options: content.Default().ServiceOptions(),
	}
	html := render(t, BookingFormCard(f))

	assert.Contains(t, html, `value="Jane"`)
	assert.Contains(t, html, `<option value="pedicure" selected>Pedicure</option>`)
	assert.Contains(t, html, "Email is required")
	assert.Equal(t, 1, strings.Count(html, "has-error"))
	assert.NotContains(t, html, "Send via")
}

func TestBookingFormShowsLinks(t *testing.T) {
	f := BookingForm{
		Result: &booking.Booking{
			Request:      booking.Request{Name: "Jane"},
			ID:           "ref-1",
			ServiceLabel: "Manicure",
			MailtoURL:    "mailto:a@b.co?subject=x&body=y",
			WhatsAppURL:  "https://wa.me/265?text=y",
		},
	}
	html := render(t, BookingFormCard(f))

	assert.Contains(t, html, "Send via WhatsApp")
	assert.Contains(t, html, `href="mailto:a@b.co?subject=x&amp;body=y"`)
	assert.Contains(t, html, "Reference: ref-1")
}

func TestRevealTargets(t *testing.T) {
	c := content.Default()
	c.Services[0].Disabled = true
	ids := RevealTargets(c)

	assert.Contains(t, ids, SectionGallery)
	assert.Contains(t, ids, "service-pedicure")
	assert.NotContains(t, ids, "service-manicure")
}
