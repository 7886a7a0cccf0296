package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var navLinks = []struct{ Href, Label string }{
	{"#home", "Home"},
	{"#services", "Services"},
	{"#gallery", "Gallery"},
	{"#about", "About"},
	{"#contact", "Contact"},
}

// Layout wraps the page body in the document shell.
func Layout(p PageConfig, body ...g.Node) g.Node {
	live := "false"
	if p.Live {
		live = "true"
	}
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(p.Content.Tagline)),
				TitleEl(g.Text(p.Content.Name)),
				Link(Rel("stylesheet"), Href(asset(p, "site.css"))),
				Script(Src("https://code.iconify.design/3/3.1.0/iconify.min.js")),
			),
			Body(
				g.Attr("data-live", live),
				g.Group(body),
				Script(Src(asset(p, "site.js")), g.Attr("defer")),
			),
		),
	)
}

// Navbar is the fixed top navigation with a mobile menu toggle.
func Navbar(name string) g.Node {
	links := make([]g.Node, len(navLinks))
	for i, l := range navLinks {
		links[i] = A(Href(l.Href), Class("nav-link"), g.Text(l.Label))
	}
	return Nav(ID("navbar"), Class("navbar"),
		Div(Class("container navbar-inner"),
			A(Href("#home"), Class("brand"), g.Text(name)),
			Div(Class("nav-links"), g.Group(links)),
			A(Href("#contact"), Class("btn btn-primary nav-cta"), g.Text("Book Now")),
			Button(Type("button"), Class("nav-toggle"), Aria("label", "Toggle menu"), Aria("expanded", "false"),
				icon("menu"),
			),
		),
		Div(Class("mobile-menu"), g.Group(links)),
	)
}

// PageFooter closes the page.
func PageFooter(name string) g.Node {
	return Footer(Class("footer"),
		Div(Class("container footer-inner"),
			P(Class("brand"), g.Text(name)),
			P(g.Textf("© %d %s. All rights reserved.", time.Now().Year(), name)),
		),
	)
}

func asset(p PageConfig, name string) string {
	u := p.AssetBase + "/" + name
	if p.AssetVersion != "" {
		u += "?v=" + p.AssetVersion
	}
	return u
}

func icon(name string) g.Node {
	return Span(Class("iconify"), g.Attr("data-icon", "lucide:"+name), Aria("hidden", "true"))
}
