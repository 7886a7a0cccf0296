package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pacesnailbar/nailbar/internal/carousel"
	"github.com/pacesnailbar/nailbar/internal/reveal"
)

const (
	liveWriteWait  = 10 * time.Second
	liveHelloWait  = 10 * time.Second
	liveReadLimit  = 16 << 10
	liveOutboxSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// clientMessage is the incoming live session message format.
type clientMessage struct {
	Type     string       `json:"type"` // hello, intersect, next, prev, jump
	Observer bool         `json:"observer,omitempty"`
	Slide    int          `json:"slide,omitempty"`
	Targets  []targetSpec `json:"targets,omitempty"`
	ID       string       `json:"id,omitempty"`
	Ratio    float64      `json:"ratio,omitempty"`
	Index    int          `json:"index,omitempty"`
}

type targetSpec struct {
	ID        string  `json:"id"`
	Threshold float64 `json:"threshold"`
}

// serverMessage is the outgoing live session message format.
type serverMessage struct {
	Type      string  `json:"type"` // ready, slide, observe, unobserve, reveal, degraded, error
	Session   string  `json:"session,omitempty"`
	Index     *int    `json:"index,omitempty"`
	Previous  *int    `json:"previous,omitempty"`
	Cause     string  `json:"cause,omitempty"`
	Interval  int64   `json:"interval,omitempty"` // milliseconds
	ID        string  `json:"id,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Message   string  `json:"message,omitempty"`
}

// liveSession is one mounted page view. It owns one carousel and one
// reveal controller for as long as the socket stays open.
type liveSession struct {
	id     string
	site   *Site
	conn   *websocket.Conn
	out    chan serverMessage
	logger *zap.Logger

	carousel *carousel.Controller
	reveal   *reveal.Controller
}

func (s *Site) handleLive(w http.ResponseWriter, r *http.Request) {
	if !s.trackSession() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.sessions.Done()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade", zap.Error(err))
		return
	}

	ls := &liveSession{
		id:   uuid.NewString(),
		site: s,
		conn: conn,
		out:  make(chan serverMessage, liveOutboxSize),
	}
	ls.logger = s.logger.Named("live").With(zap.String("session", ls.id))

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	ls.run(ctx)
}

// run mounts the session and blocks until the socket closes or ctx ends.
// Every goroutine it starts has exited by the time it returns.
func (ls *liveSession) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
		ls.conn.Close()
	}()

	wg.Add(2)
	go func() {
		defer wg.Done()
		ls.writeLoop(ctx, cancel)
	}()
	go func() {
		defer wg.Done()
		<-ctx.Done()
		// Unblocks a pending read.
		_ = ls.conn.SetReadDeadline(time.Now())
	}()

	ls.conn.SetReadLimit(liveReadLimit)
	hello, err := ls.readHello(ctx)
	if err != nil {
		ls.logger.Debug("session not mounted", zap.Error(err))
		return
	}

	if err := ls.mount(hello); err != nil {
		ls.logger.Warn("mounting session", zap.Error(err))
		ls.send(serverMessage{Type: "error", Message: err.Error()})
		return
	}
	defer ls.reveal.Close()

	ls.site.metrics.SessionOpened()
	defer ls.site.metrics.SessionClosed()
	ls.logger.Debug("session mounted",
		zap.Bool("observer", hello.Observer),
		zap.Int("targets", len(hello.Targets)),
		zap.Int("slide", ls.carousel.Active()))

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := ls.carousel.Run(ctx); err != nil {
			ls.logger.Error("carousel stopped", zap.Error(err))
			cancel()
		}
	}()

	ls.readLoop(ctx)
	ls.logger.Debug("session unmounted")
}

// readHello waits for the mount message.
func (ls *liveSession) readHello(ctx context.Context) (clientMessage, error) {
	_ = ls.conn.SetReadDeadline(time.Now().Add(liveHelloWait))
	var msg clientMessage
	if err := ls.conn.ReadJSON(&msg); err != nil {
		return msg, fmt.Errorf("reading hello: %w", err)
	}
	if msg.Type != "hello" {
		ls.send(serverMessage{Type: "error", Message: "expected hello, got " + msg.Type})
		return msg, fmt.Errorf("unexpected first message %q", msg.Type)
	}
	_ = ls.conn.SetReadDeadline(time.Time{})
	return msg, ctx.Err()
}

// mount creates the session's controllers from the hello message.
func (ls *liveSession) mount(hello clientMessage) error {
	s := ls.site
	start := hello.Slide
	if start < 0 || start >= len(s.content.Gallery) {
		ls.send(serverMessage{Type: "error", Message: fmt.Sprintf("slide %d out of range, starting at 0", start)})
		start = 0
	}
	c, err := carousel.New(s.content.Gallery,
		carousel.WithStart(start),
		carousel.WithInterval(s.opts.Interval),
		carousel.WithOnChange(func(ch carousel.Change) {
			index, previous := ch.Index, ch.Previous
			ls.send(serverMessage{Type: "slide", Index: &index, Previous: &previous, Cause: string(ch.Cause)})
			s.metrics.RecordSlide(string(ch.Cause))
		}),
	)
	if err != nil {
		return err
	}
	ls.carousel = c

	active := c.Active()
	ls.send(serverMessage{
		Type:     "ready",
		Session:  ls.id,
		Index:    &active,
		Interval: c.Interval().Milliseconds(),
	})

	factory := func() (reveal.Observer, error) {
		if !hello.Observer {
			return nil, reveal.ErrObservationUnavailable
		}
		return clientObserver{ls}, nil
	}
	ls.reveal = reveal.New(factory,
		reveal.WithOnReveal(func(t reveal.Target) {
			ls.send(serverMessage{Type: "reveal", ID: t.ID})
			s.metrics.RecordReveal(t.ID)
		}),
		reveal.WithOnDegraded(func(err error) {
			ls.logger.Debug("reveal degraded", zap.Error(err))
			ls.send(serverMessage{Type: "degraded"})
			s.metrics.RecordDegraded()
		}),
	)

	for _, t := range hello.Targets {
		if !s.targets[t.ID] {
			ls.send(serverMessage{Type: "error", ID: t.ID, Message: "unknown reveal target"})
			continue
		}
		if _, err := ls.reveal.Register(t.ID, t.Threshold); err != nil {
			ls.send(serverMessage{Type: "error", ID: t.ID, Message: err.Error()})
		}
	}
	return nil
}

func (ls *liveSession) readLoop(ctx context.Context) {
	for {
		_, data, err := ls.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ls.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			ls.send(serverMessage{Type: "error", Message: "invalid message format"})
			continue
		}
		ls.handle(msg)
	}
}

func (ls *liveSession) handle(msg clientMessage) {
	switch msg.Type {
	case "intersect":
		ls.reveal.Intersect(msg.ID, msg.Ratio)
	case "next":
		ls.carousel.Next()
	case "prev":
		ls.carousel.Prev()
	case "jump":
		if err := ls.carousel.JumpTo(msg.Index); err != nil {
			if !errors.Is(err, carousel.ErrOutOfRange) {
				ls.logger.Warn("jump", zap.Error(err))
			}
			ls.send(serverMessage{Type: "error", Message: err.Error()})
		}
	case "hello":
		ls.send(serverMessage{Type: "error", Message: "session already mounted"})
	default:
		ls.send(serverMessage{Type: "error", Message: "unknown message type: " + msg.Type})
	}
}

func (ls *liveSession) writeLoop(ctx context.Context, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			_ = ls.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(liveWriteWait))
			return
		case msg := <-ls.out:
			_ = ls.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := ls.conn.WriteJSON(msg); err != nil {
				ls.logger.Debug("websocket write", zap.Error(err))
				cancel()
				return
			}
		}
	}
}

// send queues msg without blocking. Controllers call it with their lock
// held, so a stalled client loses messages rather than stalling the session.
func (ls *liveSession) send(msg serverMessage) {
	select {
	case ls.out <- msg:
	default:
		ls.logger.Warn("outbox full, dropping message", zap.String("type", msg.Type))
	}
}

// clientObserver forwards observation requests to the browser's
// IntersectionObserver.
type clientObserver struct {
	ls *liveSession
}

func (o clientObserver) Observe(id string, threshold float64) {
	o.ls.send(serverMessage{Type: "observe", ID: id, Threshold: threshold})
}

func (o clientObserver) Unobserve(id string) {
	o.ls.send(serverMessage{Type: "unobserve", ID: id})
}
