// Package components renders the salon page with gomponents.
package components

import (
	"strconv"

	g "maragu.dev/gomponents"

	"github.com/pacesnailbar/nailbar/internal/booking"
	"github.com/pacesnailbar/nailbar/internal/content"
)

// Section ids double as reveal target ids.
const (
	SectionServices = "services"
	SectionGallery  = "gallery"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

// PageConfig is everything one render of the home page depends on.
type PageConfig struct {
	Content   *content.Content
	AboutHTML string

	// Active is the gallery slide marked current; Prev and Next are the
	// slides the no-script arrows link to.
	Active int
	Prev   int
	Next   int

	Threshold float64
	Live      bool
	// AssetBase prefixes stylesheet and script URLs, "/static" when served
	// and "static" in an export.
	AssetBase string
	// AssetVersion is appended to asset URLs to bust caches.
	AssetVersion string

	Form BookingForm
}

// BookingForm is the state of the contact form.
type BookingForm struct {
	Values  booking.Request
	Errors  map[string]string
	Result  *booking.Booking
	Options []content.ServiceOption
}

// ServiceTarget is the reveal target id of a service card.
func ServiceTarget(s content.Service) string {
	id := s.ID
	if id == "" {
		id = s.Category
	}
	return "service-" + id
}

// RevealTargets lists every reveal target id the page renders.
func RevealTargets(c *content.Content) []string {
	ids := []string{SectionServices, SectionGallery, SectionAbout, SectionContact}
	for _, s := range c.ActiveServices() {
		ids = append(ids, ServiceTarget(s))
	}
	return ids
}

// Home is the full page.
func Home(p PageConfig) g.Node {
	return Layout(p,
		Navbar(p.Content.Name),
		HeroSection(p.Content.Hero),
		ServicesSection(p.Content.ActiveServices(), p.Threshold),
		GallerySection(p),
		AboutSection(p.AboutHTML, p.Threshold),
		ContactSection(p.Content.Contact, p.Form, p.Threshold),
		PageFooter(p.Content.Name),
	)
}

// reveal marks a node as a reveal target.
func reveal(id string, threshold float64) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", id),
		g.Attr("data-threshold", strconv.FormatFloat(threshold, 'f', -1, 64)),
	})
}
