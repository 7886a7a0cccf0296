package booking

import (
	"net/mail"
	"slices"
	"sort"
	"strings"
	"time"
)

// ValidationError lists the fields of a Request that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid booking: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// Validate checks presence and format of every field. services lists the
// accepted service values; an empty list accepts any non-empty service.
func (r Request) Validate(services []string) error {
	verr := &ValidationError{}

	if r.Name == "" {
		verr.add("name", "is required")
	}

	switch {
	case r.Email == "":
		verr.add("email", "is required")
	case !validEmail(r.Email):
		verr.add("email", "is not a valid email address")
	}

	switch {
	case r.Phone == "":
		verr.add("phone", "is required")
	case !validPhone(r.Phone):
		verr.add("phone", "must contain 7 to 15 digits")
	}

	switch {
	case r.Service == "":
		verr.add("service", "is required")
	case len(services) > 0 && !slices.Contains(services, r.Service):
		verr.add("service", "is not offered")
	}

	if r.PreferredDate != "" {
		if _, err := time.Parse(time.DateOnly, r.PreferredDate); err != nil {
			verr.add("preferred_date", "must be YYYY-MM-DD")
		}
	}
	if r.PreferredTime != "" {
		if _, err := time.Parse("15:04", r.PreferredTime); err != nil {
			verr.add("preferred_time", "must be HH:MM")
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// validEmail accepts a bare address, no display name.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

func validPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ', r == '+', r == '-', r == '(', r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
