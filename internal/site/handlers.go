package site

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pacesnailbar/nailbar/internal/booking"
	"github.com/pacesnailbar/nailbar/internal/carousel"
	"github.com/pacesnailbar/nailbar/internal/site/components"
)

const maxBookingBody = 64 << 10

// RegisterRoutes mounts the site on r. middlewares apply to the page and
// asset routes but not to the live session socket.
func (s *Site) RegisterRoutes(r chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(middlewares...)
		r.Get("/", s.handleHome)
		r.Post("/book", s.handleBook)
		r.Post("/api/booking/links", s.handleLinks)
		r.Handle("/static/*", s.staticHandler())
		if s.opts.UploadsDir != "" {
			r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.opts.UploadsDir))))
		}
	})
	if s.opts.Live {
		r.Get("/ws/live", s.handleLive)
	}
}

// handleHome serves the page with the ?slide= gallery image active.
func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	slide := 0
	if v := r.URL.Query().Get("slide"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "slide must be a number", http.StatusBadRequest)
			return
		}
		slide = n
	}

	key := "home:" + strconv.Itoa(slide)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.metrics.RecordCacheHit()
			writeHTML(w, http.StatusOK, cached.([]byte))
			return
		}
	}

	p, err := s.page(slide, "/static")
	if errors.Is(err, carousel.ErrOutOfRange) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, "building page", err)
		return
	}
	body, err := s.render(p)
	if err != nil {
		s.serverError(w, "rendering page", err)
		return
	}
	if s.cache != nil {
		s.cache.SetDefault(key, body)
	}
	writeHTML(w, http.StatusOK, body)
}

// handleBook is the no-script form post. The page is re-rendered with
// either the field errors or the send links.
func (s *Site) handleBook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBookingBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req := booking.Request{
		Name:          r.PostForm.Get("name"),
		Email:         r.PostForm.Get("email"),
		Phone:         r.PostForm.Get("phone"),
		Service:       r.PostForm.Get("service"),
		PreferredDate: r.PostForm.Get("preferred_date"),
		PreferredTime: r.PostForm.Get("preferred_time"),
		Message:       r.PostForm.Get("message"),
	}

	p, err := s.page(0, "/static")
	if err != nil {
		s.serverError(w, "building page", err)
		return
	}

	status := http.StatusOK
	b, err := s.composer.Compose(req)
	s.metrics.RecordBooking(bookedService(b), err)
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		req.Normalize()
		p.Form = components.BookingForm{Values: req, Errors: verr.Fields, Options: s.composer.Options}
		status = http.StatusUnprocessableEntity
	case err != nil:
		s.serverError(w, "composing booking", err)
		return
	default:
		s.logger.Info("booking links composed", zap.String("reference", b.ID), zap.String("service", b.Service))
		p.Form = components.BookingForm{Result: b, Options: s.composer.Options}
	}

	body, err := s.render(p)
	if err != nil {
		s.serverError(w, "rendering page", err)
		return
	}
	writeHTML(w, status, body)
}

// bookedService is the metric label of a booking: the validated service
// value, or "" when the request was rejected.
func bookedService(b *booking.Booking) string {
	if b == nil {
		return ""
	}
	return b.Service
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// handleLinks is the JSON booking endpoint used by site.js.
func (s *Site) handleLinks(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBookingBody)
	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	b, err := s.composer.Compose(req)
	s.metrics.RecordBooking(bookedService(b), err)
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verr.Fields})
	case err != nil:
		s.logger.Error("composing booking", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "booking unavailable"})
	default:
		s.logger.Info("booking links composed", zap.String("reference", b.ID), zap.String("service", b.Service))
		writeJSON(w, http.StatusOK, b)
	}
}

// staticHandler serves the embedded stylesheet and script. URLs carry the
// asset hash so responses never change.
func (s *Site) staticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		fileServer.ServeHTTP(w, r)
	})
}

func (s *Site) serverError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
