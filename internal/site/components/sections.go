package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pacesnailbar/nailbar/internal/content"
)

// HeroSection is the banner with the call-to-action buttons.
func HeroSection(h content.Hero) g.Node {
	return Section(ID("home"), Class("hero"),
		Div(Class("container hero-inner"),
			Div(Class("hero-text"),
				H1(Class("hero-title"),
					g.Text(h.Title+" "),
					Span(Class("highlight"), g.Text(h.Highlight)),
				),
				P(Class("hero-lead"), g.Text(h.Text)),
				Div(Class("hero-actions"),
					A(Href("#contact"), Class("btn btn-primary"), g.Text("Book Appointment")),
					A(Href("#services"), Class("btn btn-outline"), g.Text("View Services")),
				),
			),
			g.If(h.Image != "",
				Div(Class("hero-image"),
					Img(Src(h.Image), Alt(h.ImageAlt)),
				),
			),
		),
	)
}

// ServicesSection is the price list. Cards reveal one after another.
func ServicesSection(services []content.Service, threshold float64) g.Node {
	cards := make([]g.Node, len(services))
	for i, s := range services {
		cards[i] = serviceCard(s, i, threshold)
	}
	return Section(ID(SectionServices), Class("section services"), reveal(SectionServices, threshold),
		Div(Class("container"),
			sectionHeading("Our Services", "Pamper your hands and feet with our professional nail care."),
			Div(Class("service-grid"), g.Group(cards)),
		),
	)
}

func serviceCard(s content.Service, i int, threshold float64) g.Node {
	delay := 0.2 + float64(i)*0.2
	return Div(Class("service-card"),
		reveal(ServiceTarget(s), threshold),
		g.Attr("style", "transition-delay: "+strconv.FormatFloat(delay, 'f', 1, 64)+"s"),
		Div(Class("service-icon"), icon(s.Icon)),
		H3(g.Text(s.Title)),
		g.If(s.Description != "", P(Class("muted"), g.Text(s.Description))),
		Ul(Class("price-list"),
			g.Group(g.Map(s.SubServices, func(sub content.SubService) g.Node {
				return Li(
					Span(Class("price-name"), g.Text(sub.Name)),
					g.If(sub.Duration > 0, Span(Class("price-duration"), g.Textf("%d min", sub.Duration))),
					Span(Class("price"), g.Text(sub.Price)),
				)
			})),
		),
	)
}

// GallerySection is the carousel. Every slide, dot and thumbnail is
// rendered; the active one carries the "active" class.
func GallerySection(p PageConfig) g.Node {
	images := p.Content.Gallery
	slides := make([]g.Node, len(images))
	dots := make([]g.Node, len(images))
	thumbs := make([]g.Node, len(images))
	for i, src := range images {
		active := i == p.Active
		alt := fmt.Sprintf("Nail design %d", i+1)
		slides[i] = Div(Class(activeClass("slide", active)),
			g.Attr("data-index", strconv.Itoa(i)),
			Img(Src(src), Alt(alt), g.Attr("loading", lazy(i))),
		)
		dots[i] = A(Href(slideHref(i)), Class(activeClass("dot", active)),
			g.Attr("data-jump", strconv.Itoa(i)),
			Aria("label", fmt.Sprintf("Go to slide %d", i+1)),
		)
		thumbs[i] = A(Href(slideHref(i)), Class(activeClass("thumb", active)),
			g.Attr("data-jump", strconv.Itoa(i)),
			Img(Src(src), Alt(alt), g.Attr("loading", "lazy")),
		)
	}

	return Section(ID(SectionGallery), Class("section gallery"), reveal(SectionGallery, p.Threshold),
		Div(Class("container"),
			sectionHeading("Our Work", "A few of our favourite sets."),
			Div(Class("carousel"), g.Attr("data-active", strconv.Itoa(p.Active)),
				Div(Class("slides"), g.Group(slides)),
				A(Href(slideHref(p.Prev)), Class("carousel-btn prev"), g.Attr("data-nav", "prev"),
					Aria("label", "Previous slide"), icon("chevron-left")),
				A(Href(slideHref(p.Next)), Class("carousel-btn next"), g.Attr("data-nav", "next"),
					Aria("label", "Next slide"), icon("chevron-right")),
				Div(Class("dots"), g.Group(dots)),
			),
			Div(Class("thumbs"), g.Group(thumbs)),
		),
	)
}

// AboutSection renders the pre-rendered about markdown.
func AboutSection(html string, threshold float64) g.Node {
	return Section(ID(SectionAbout), Class("section about"), reveal(SectionAbout, threshold),
		Div(Class("container"),
			sectionHeading("About Us", ""),
			Div(Class("prose"), g.Raw(html)),
		),
	)
}

func sectionHeading(title, lead string) g.Node {
	return Div(Class("section-heading"),
		H2(g.Text(title)),
		g.If(lead != "", P(Class("muted"), g.Text(lead))),
	)
}

func slideHref(i int) string {
	return "?slide=" + strconv.Itoa(i) + "#gallery"
}

func activeClass(base string, active bool) string {
	if active {
		return base + " active"
	}
	return base
}

func lazy(i int) string {
	if i == 0 {
		return "eager"
	}
	return "lazy"
}
