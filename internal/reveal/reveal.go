// Package reveal tracks page sections that play a one-time reveal animation
// the first time they scroll into view.
package reveal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DefaultThreshold is the visible-area fraction that counts as intersecting.
const DefaultThreshold = 0.1

var (
	// ErrObservationUnavailable means no visibility primitive could be created.
	ErrObservationUnavailable = errors.New("reveal: visibility observation unavailable")
	// ErrInvalidThreshold is returned by Register for thresholds outside (0, 1].
	ErrInvalidThreshold = errors.New("reveal: threshold must be in (0, 1]")
)

// State is the lifecycle state of a target.
type State string

const (
	StateHidden   State = "hidden"
	StateRevealed State = "revealed"
	// StateUnknown is reported for ids that are not registered.
	StateUnknown State = "unknown"
)

// Observer is the visibility primitive: something that reports how much of a
// target is visible until told to stop.
type Observer interface {
	Observe(id string, threshold float64)
	Unobserve(id string)
}

// ObserverFactory creates the Observer for a controller.
type ObserverFactory func() (Observer, error)

// Target is a registered page region.
type Target struct {
	ID        string
	Threshold float64
	Revealed  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnReveal registers a callback fired once per target when it is revealed.
func WithOnReveal(fn func(Target)) Option {
	return func(c *Controller) { c.onReveal = fn }
}

// WithOnDegraded registers a callback fired when the controller starts
// without an observer.
func WithOnDegraded(fn func(error)) Option {
	return func(c *Controller) { c.onDegraded = fn }
}

// Controller latches registered targets from hidden to revealed.
type Controller struct {
	mu         sync.Mutex
	observer   Observer
	targets    map[string]*Target
	observed   map[string]bool
	onReveal   func(Target)
	onDegraded func(error)
	closed     bool
}

// New creates a Controller. When the factory is nil or fails, the
// controller runs degraded: targets register as hidden and stay hidden.
func New(factory ObserverFactory, opts ...Option) *Controller {
	c := &Controller{
		targets:  make(map[string]*Target),
		observed: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	if factory == nil {
		err = ErrObservationUnavailable
	} else {
		c.observer, err = factory()
		if err == nil && c.observer == nil {
			err = ErrObservationUnavailable
		}
	}
	if err != nil {
		c.observer = nil
		if c.onDegraded != nil {
			c.onDegraded(err)
		}
	}
	return c
}

// Degraded reports whether the controller has no visibility primitive.
func (c *Controller) Degraded() bool {
	return c.observer == nil
}

// Register starts tracking id. A zero threshold selects DefaultThreshold.
// Registering an id twice returns the existing target unchanged.
func (c *Controller) Register(id string, threshold float64) (Target, error) {
	if id == "" {
		return Target{}, fmt.Errorf("reveal: empty target id")
	}
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if !(threshold > 0 && threshold <= 1) {
		return Target{}, fmt.Errorf("%w: %s has %v", ErrInvalidThreshold, id, threshold)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Target{}, fmt.Errorf("reveal: controller closed")
	}
	if t, ok := c.targets[id]; ok {
		return *t, nil
	}

	t := &Target{ID: id, Threshold: threshold}
	c.targets[id] = t
	if c.observer != nil {
		c.observer.Observe(id, threshold)
		c.observed[id] = true
	}
	return *t, nil
}

// Intersect reports that ratio of target id is visible. It returns true only
// when this call moved the target from hidden to revealed.
func (c *Controller) Intersect(id string, ratio float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.observed[id] {
		return false
	}
	t := c.targets[id]
	if t.Revealed || ratio < t.Threshold {
		return false
	}

	t.Revealed = true
	c.unobserve(id)
	if c.onReveal != nil {
		c.onReveal(*t)
	}
	return true
}

// Unregister stops tracking id without revealing it.
func (c *Controller) Unregister(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.targets[id]; !ok {
		return
	}
	c.unobserve(id)
	delete(c.targets, id)
}

// Close unregisters every target. Further registrations fail.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.targets {
		c.unobserve(id)
	}
	c.targets = make(map[string]*Target)
	c.closed = true
}

// unobserve releases the observer for id. Caller holds c.mu.
func (c *Controller) unobserve(id string) {
	if c.observed[id] {
		delete(c.observed, id)
		c.observer.Unobserve(id)
	}
}

// State returns the state of id.
func (c *Controller) State(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.targets[id]
	switch {
	case !ok:
		return StateUnknown
	case t.Revealed:
		return StateRevealed
	default:
		return StateHidden
	}
}

// Observing reports whether id is still being watched.
func (c *Controller) Observing(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.observed[id]
}

// Targets returns a snapshot of the registered targets ordered by id.
func (c *Controller) Targets() []Target {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Target, 0, len(c.targets))
	for _, t := range c.targets {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
