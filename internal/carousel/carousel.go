// Package carousel implements the gallery slide controller: an index over a
// fixed set of images with manual navigation and a countdown that advances
// the slide automatically.
package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the delay between automatic advances.
const DefaultInterval = 5000 * time.Millisecond

var (
	// ErrInvalidConfiguration is returned by New when the image set is empty.
	ErrInvalidConfiguration = errors.New("carousel: invalid configuration")
	// ErrOutOfRange is returned by JumpTo for an index outside the image set.
	ErrOutOfRange = errors.New("carousel: index out of range")
	// ErrRunning is returned when Run is called on a controller that is already running.
	ErrRunning = errors.New("carousel: already running")
)

// ImageSet is an ordered list of image URIs.
type ImageSet []string

// Cause identifies what moved the carousel.
type Cause string

const (
	CauseNext Cause = "next"
	CausePrev Cause = "prev"
	CauseJump Cause = "jump"
	CauseAuto Cause = "auto"
)

// Change describes a single index transition.
type Change struct {
	Index    int
	Previous int
	Cause    Cause
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval overrides the automatic advance interval.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithOnChange registers a callback invoked after every index change.
// The callback runs while the controller lock is held so notifications are
// delivered in the same order as the changes; it must not call back into
// the controller.
func WithOnChange(fn func(Change)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithStart positions the controller on image i instead of the first one.
// No change is reported for the starting position.
func WithStart(i int) Option {
	return func(c *Controller) {
		c.active = i
	}
}

// withCountdown swaps the timer implementation (tests).
func withCountdown(fn func(time.Duration) countdown) Option {
	return func(c *Controller) {
		c.newCountdown = fn
	}
}

// Controller owns the active index of a carousel.
type Controller struct {
	images       ImageSet
	interval     time.Duration
	onChange     func(Change)
	newCountdown func(time.Duration) countdown

	mu      sync.Mutex
	active  int
	changed chan struct{}
	running atomic.Bool
}

// New creates a Controller positioned on the first image, or on the
// WithStart image.
func New(images ImageSet, opts ...Option) (*Controller, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: image set is empty", ErrInvalidConfiguration)
	}

	c := &Controller{
		images:       append(ImageSet(nil), images...),
		interval:     DefaultInterval,
		newCountdown: newTimerCountdown,
		changed:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.active < 0 || c.active >= len(images) {
		return nil, fmt.Errorf("%w: start %d not in [0, %d]", ErrOutOfRange, c.active, len(images)-1)
	}
	return c, nil
}

// Len returns the number of images.
func (c *Controller) Len() int { return len(c.images) }

// Interval returns the automatic advance interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// Image returns the URI at index i, or "" when i is out of range.
func (c *Controller) Image(i int) string {
	if i < 0 || i >= len(c.images) {
		return ""
	}
	return c.images[i]
}

// Images returns a copy of the image set.
func (c *Controller) Images() ImageSet {
	return append(ImageSet(nil), c.images...)
}

// Active returns the current index.
func (c *Controller) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Current returns the URI of the active image.
func (c *Controller) Current() string {
	return c.images[c.Active()]
}

// Next moves to the following image, wrapping to the first.
func (c *Controller) Next() {
	c.step(1, CauseNext)
}

// Prev moves to the preceding image, wrapping to the last.
func (c *Controller) Prev() {
	c.step(-1, CausePrev)
}

// JumpTo moves to image i. The index is left untouched when i is out of range.
func (c *Controller) JumpTo(i int) error {
	n := len(c.images)
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, i, n-1)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(i, CauseJump)
	return nil
}

// step moves the index by delta modulo the image count and reports whether
// the index changed.
func (c *Controller) step(delta int, cause Cause) bool {
	n := len(c.images)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set(((c.active+delta)%n+n)%n, cause)
}

// set assigns the index. Caller holds c.mu.
func (c *Controller) set(i int, cause Cause) bool {
	if i == c.active {
		return false
	}
	prev := c.active
	c.active = i

	// Restart the countdown; a pending signal already covers this change.
	select {
	case c.changed <- struct{}{}:
	default:
	}

	if c.onChange != nil {
		c.onChange(Change{Index: i, Previous: prev, Cause: cause})
	}
	return true
}

// Run drives the automatic advance until ctx is done. Every index change,
// manual or automatic, restarts the countdown. The countdown is always
// stopped before Run returns.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer c.running.Store(false)

	// Changes made before the mount do not count against the first countdown.
	select {
	case <-c.changed:
	default:
	}

	cd := c.newCountdown(c.interval)
	defer cd.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.changed:
			cd.Reset(c.interval)
		case <-cd.C():
			if !c.step(1, CauseAuto) {
				// Single image: nothing moved, keep ticking.
				cd.Reset(c.interval)
			}
		}
	}
}

// Running reports whether Run is active.
func (c *Controller) Running() bool { return c.running.Load() }
