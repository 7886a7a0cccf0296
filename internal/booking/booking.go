// Package booking turns a booking form submission into the two deep-links
// the visitor uses to send it: an email compose link and a WhatsApp link.
// Nothing is stored or sent by the server.
package booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pacesnailbar/nailbar/internal/content"
)

// Status is the lifecycle state attached to a composed booking.
type Status string

// StatusPending is the only state the site assigns; confirmation happens
// off-site when the salon replies.
const StatusPending Status = "pending"

// Request is the booking form payload.
type Request struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = strings.TrimSpace(r.Service)
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
	r.PreferredTime = strings.TrimSpace(r.PreferredTime)
	r.Message = strings.TrimSpace(r.Message)
}

// Booking is an accepted request with its deep-links.
type Booking struct {
	Request
	ID           string    `json:"id"`
	Status       Status    `json:"status"`
	ServiceLabel string    `json:"service_label"`
	SubmittedAt  time.Time `json:"submitted_at"`
	MailtoURL    string    `json:"mailto_url,omitempty"`
	WhatsAppURL  string    `json:"whatsapp_url,omitempty"`
}

// Composer builds bookings for one salon.
type Composer struct {
	Salon    string
	Email    string
	WhatsApp string
	Options  []content.ServiceOption

	now   func() time.Time
	newID func() string
}

// NewComposer creates a Composer from the site content.
func NewComposer(c *content.Content) *Composer {
	return &Composer{
		Salon:    c.Name,
		Email:    c.Contact.Email,
		WhatsApp: c.Contact.WhatsApp,
		Options:  c.ServiceOptions(),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// ServiceValues returns the accepted service values.
func (c *Composer) ServiceValues() []string {
	vals := make([]string, len(c.Options))
	for i, o := range c.Options {
		vals[i] = o.Value
	}
	return vals
}

func (c *Composer) label(value string) string {
	for _, o := range c.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return content.Label(value)
}

// Compose validates req and returns the booking with its links.
func (c *Composer) Compose(req Request) (*Booking, error) {
	req.Normalize()
	if err := req.Validate(c.ServiceValues()); err != nil {
		return nil, err
	}

	b := &Booking{
		Request:      req,
		ID:           c.newID(),
		Status:       StatusPending,
		ServiceLabel: c.label(req.Service),
		SubmittedAt:  c.now().UTC(),
	}

	subject := fmt.Sprintf("Booking Request: %s - %s", b.ServiceLabel, req.Name)
	body := c.body(b)

	if c.Email != "" {
		b.MailtoURL = "mailto:" + c.Email + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
	}
	if digits := digitsOnly(c.WhatsApp); digits != "" {
		b.WhatsAppURL = "https://wa.me/" + digits + "?text=" + encodeComponent(body)
	}
	if b.MailtoURL == "" && b.WhatsAppURL == "" {
		return nil, fmt.Errorf("booking: no email or whatsapp destination configured")
	}
	return b, nil
}

// body renders the message text shared by both links.
func (c *Composer) body(b *Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s, I would like to book an appointment.\n\n", c.Salon)
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Service: %s\n", b.ServiceLabel)
	if b.PreferredDate != "" {
		fmt.Fprintf(&sb, "Preferred date: %s\n", b.PreferredDate)
	}
	if b.PreferredTime != "" {
		fmt.Fprintf(&sb, "Preferred time: %s\n", b.PreferredTime)
	}
	if b.Message != "" {
		fmt.Fprintf(&sb, "Message: %s\n", b.Message)
	}
	fmt.Fprintf(&sb, "\nReference: %s", b.ID)
	return sb.String()
}

// componentUnescapes undoes the QueryEscape encodings that
// encodeURIComponent leaves alone. A literal "+" is already %2B by then.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s the way encodeURIComponent does, so
// spaces become %20 and mail clients do not show literal plus signs.
func encodeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
