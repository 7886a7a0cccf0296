package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pacesnailbar/nailbar/internal/booking"
	"github.com/pacesnailbar/nailbar/internal/content"
)

// ContactSection shows the contact details next to the booking form.
func ContactSection(c content.Contact, form BookingForm, threshold float64) g.Node {
	return Section(ID(SectionContact), Class("section contact"), reveal(SectionContact, threshold),
		Div(Class("container contact-grid"),
			Div(Class("contact-info"),
				sectionHeading("Get in Touch", "Book an appointment or ask us anything."),
				g.If(len(c.Phones) > 0, infoBlock("phone", "Phone",
					g.Group(g.Map(c.Phones, func(p string) g.Node {
						return P(A(Href("tel:"+strings.ReplaceAll(p, " ", "")), g.Text(p)))
					})),
				)),
				g.If(c.Email != "", infoBlock("mail", "Email",
					P(A(Href("mailto:"+c.Email), g.Text(c.Email))),
				)),
				g.If(c.Location != "", infoBlock("map-pin", "Location", P(g.Text(c.Location)))),
				g.If(len(c.Hours) > 0, infoBlock("clock", "Opening Hours",
					g.Group(g.Map(c.Hours, func(h content.Hours) g.Node {
						return P(Span(Class("hours-days"), g.Text(h.Days+": ")), g.Text(h.Open+" - "+h.Close))
					})),
				)),
			),
			BookingFormCard(form),
		),
	)
}

func infoBlock(iconName, title string, body ...g.Node) g.Node {
	return Div(Class("info-block"),
		Div(Class("info-icon"), icon(iconName)),
		Div(H4(g.Text(title)), g.Group(body)),
	)
}

// BookingFormCard is the booking form, followed by the send links once a
// submission validated.
func BookingFormCard(f BookingForm) g.Node {
	v := f.Values
	return Div(Class("booking-card"), ID("booking"),
		H3(g.Text("Book an Appointment")),
		g.If(len(f.Errors) > 0,
			Div(Class("form-alert"), Role("alert"), g.Text("Please correct the highlighted fields.")),
		),
		g.El("form", Method("post"), Action("/book#contact"), ID("booking-form"), g.Attr("novalidate"),
			Div(Class("form-row"),
				field(f, "name", "Full Name", Input(Type("text"), ID("name"), Name("name"), Value(v.Name), Required())),
				field(f, "email", "Email", Input(Type("email"), ID("email"), Name("email"), Value(v.Email), Required())),
			),
			Div(Class("form-row"),
				field(f, "phone", "Phone", Input(Type("tel"), ID("phone"), Name("phone"), Value(v.Phone), Required())),
				field(f, "service", "Service", serviceSelect(f.Options, v.Service)),
			),
			Div(Class("form-row"),
				field(f, "preferred_date", "Preferred Date",
					Input(Type("date"), ID("preferred_date"), Name("preferred_date"), Value(v.PreferredDate))),
				field(f, "preferred_time", "Preferred Time",
					Input(Type("time"), ID("preferred_time"), Name("preferred_time"), Value(v.PreferredTime))),
			),
			field(f, "message", "Message",
				Textarea(ID("message"), Name("message"), g.Attr("rows", "4"), g.Text(v.Message))),
			Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Request Booking")),
		),
		Div(ID("booking-result"), bookingResult(f.Result)),
	)
}

func serviceSelect(opts []content.ServiceOption, selected string) g.Node {
	return Select(ID("service"), Name("service"), Required(),
		Option(Value(""), g.If(selected == "", Selected()), g.Text("Select a service")),
		g.Group(g.Map(opts, func(o content.ServiceOption) g.Node {
			return Option(Value(o.Value), g.If(o.Value == selected, Selected()), g.Text(o.Label))
		})),
	)
}

func field(f BookingForm, name, label string, input g.Node) g.Node {
	msg, bad := f.Errors[name]
	return Div(Class(fieldClass(bad)),
		g.El("label", For(name), g.Text(label)),
		input,
		g.If(bad, P(Class("field-error"), g.Text(label+" "+msg))),
	)
}

func fieldClass(bad bool) string {
	if bad {
		return "field has-error"
	}
	return "field"
}

func bookingResult(b *booking.Booking) g.Node {
	if b == nil {
		return nil
	}
	return Div(Class("booking-result"),
		P(g.Textf("Thanks %s! Send your %s request with one of the options below.", b.Name, b.ServiceLabel)),
		Div(Class("result-actions"),
			g.If(b.WhatsAppURL != "",
				A(Href(b.WhatsAppURL), Class("btn btn-primary"), Target("_blank"), Rel("noopener noreferrer"),
					icon("message-circle"), g.Text(" Send via WhatsApp")),
			),
			g.If(b.MailtoURL != "",
				A(Href(b.MailtoURL), Class("btn btn-outline"), icon("mail"), g.Text(" Send via Email")),
			),
		),
		P(Class("muted small"), g.Text("Reference: "+b.ID)),
	)
}
