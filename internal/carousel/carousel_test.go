package carousel

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func images(n int) ImageSet {
	set := make(ImageSet, n)
	for i := range set {
		set[i] = "/uploads/" + string(rune('a'+i)) + ".png"
	}
	return set
}

// fakeCountdown is fired by the test instead of the clock.
type fakeCountdown struct {
	c       chan time.Time
	resets  chan time.Duration
	stopped chan struct{}
}

func (f *fakeCountdown) C() <-chan time.Time { return f.c }

func (f *fakeCountdown) Reset(d time.Duration) {
	select {
	case f.resets <- d:
	default:
	}
}

func (f *fakeCountdown) Stop() { close(f.stopped) }

// fakeClock hands out a single fakeCountdown once Run arms it.
type fakeClock struct {
	armed chan *fakeCountdown
}

func newFakeClock() *fakeClock {
	return &fakeClock{armed: make(chan *fakeCountdown, 1)}
}

func (fc *fakeClock) option() Option {
	return withCountdown(func(time.Duration) countdown {
		f := &fakeCountdown{
			c:       make(chan time.Time),
			resets:  make(chan time.Duration, 64),
			stopped: make(chan struct{}),
		}
		fc.armed <- f
		return f
	})
}

func (fc *fakeClock) wait(t *testing.T) *fakeCountdown {
	t.Helper()
	select {
	case f := <-fc.armed:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("countdown was never armed")
		return nil
	}
}

func collect() (chan Change, Option) {
	ch := make(chan Change, 64)
	return ch, WithOnChange(func(c Change) { ch <- c })
}

func nextChange(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no index change observed")
		return Change{}
	}
}

func TestNewRejectsEmptyImageSet(t *testing.T) {
	c, err := New(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Nil(t, c)

	c, err = New(ImageSet{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, c)
}

func TestNewCopiesImageSet(t *testing.T) {
	set := images(3)
	c, err := New(set)
	require.NoError(t, err)

	set[0] = "mutated"
	assert.Equal(t, "/uploads/a.png", c.Image(0))
	assert.Equal(t, 0, c.Active())
	assert.Equal(t, DefaultInterval, c.Interval())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "", c.Image(3))

	c.Prev()
	assert.Equal(t, set[2], c.Current())
}

func TestNextPrevStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 8; n++ {
		c, err := New(images(n))
		require.NoError(t, err)

		for step := 0; step < 200; step++ {
			if rng.Intn(2) == 0 {
				c.Next()
			} else {
				c.Prev()
			}
			idx := c.Active()
			if idx < 0 || idx >= n {
				t.Fatalf("n=%d step=%d: index %d out of range", n, step, idx)
			}
		}
	}
}

func TestWraparound(t *testing.T) {
	c, err := New(images(4))
	require.NoError(t, err)

	c.Prev()
	assert.Equal(t, 3, c.Active(), "prev from 0 wraps to last")
	c.Next()
	assert.Equal(t, 0, c.Active(), "next from last wraps to 0")
}

func TestNextPrevAreInverse(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			c, err := New(images(n))
			require.NoError(t, err)
			require.NoError(t, c.JumpTo(start))

			c.Next()
			c.Prev()
			assert.Equal(t, start, c.Active(), "next then prev, n=%d start=%d", n, start)

			c.Prev()
			c.Next()
			assert.Equal(t, start, c.Active(), "prev then next, n=%d start=%d", n, start)
		}
	}
}

func TestJumpTo(t *testing.T) {
	c, err := New(images(5))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.JumpTo(i))
		assert.Equal(t, i, c.Active())
	}

	require.NoError(t, c.JumpTo(2))
	for _, bad := range []int{-1, 5, 100} {
		err := c.JumpTo(bad)
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", bad)
		assert.Equal(t, 2, c.Active(), "index must not move on %d", bad)
	}
}

func TestWithStart(t *testing.T) {
	changes, onChange := collect()
	c, err := New(images(5), WithStart(3), onChange)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Active())
	assert.Empty(t, changes, "the starting position is not a change")

	for _, bad := range []int{-1, 5} {
		_, err := New(images(5), WithStart(bad))
		assert.ErrorIs(t, err, ErrOutOfRange, "start %d", bad)
	}
}

func TestThreeImagesNextSequence(t *testing.T) {
	changes, onChange := collect()
	c, err := New(images(3), onChange)
	require.NoError(t, err)

	var got []int
	for i := 0; i < 3; i++ {
		c.Next()
		got = append(got, c.Active())
	}
	assert.Equal(t, []int{1, 2, 0}, got)

	assert.Equal(t, Change{Index: 1, Previous: 0, Cause: CauseNext}, <-changes)
	assert.Equal(t, Change{Index: 2, Previous: 1, Cause: CauseNext}, <-changes)
	assert.Equal(t, Change{Index: 0, Previous: 2, Cause: CauseNext}, <-changes)
}

func TestJumpToSameIndexIsNotAChange(t *testing.T) {
	changes, onChange := collect()
	c, err := New(images(3), onChange)
	require.NoError(t, err)

	require.NoError(t, c.JumpTo(0))
	assert.Empty(t, changes)
}

func TestAutomaticAdvanceFullCycle(t *testing.T) {
	clock := newFakeClock()
	changes, onChange := collect()
	c, err := New(images(15), onChange, clock.option())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	cd := clock.wait(t)
	for i := 1; i <= 5; i++ {
		cd.c <- time.Now()
		ch := nextChange(t, changes)
		assert.Equal(t, CauseAuto, ch.Cause)
		assert.Equal(t, i, ch.Index)
	}
	assert.Equal(t, 5, c.Active())

	for i := 6; i <= 15; i++ {
		cd.c <- time.Now()
		nextChange(t, changes)
	}
	assert.Equal(t, 0, c.Active(), "15 ticks complete the cycle")

	cancel()
	require.NoError(t, <-done)
}

func TestManualNavigationRestartsCountdown(t *testing.T) {
	clock := newFakeClock()
	c, err := New(images(4), clock.option())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cd := clock.wait(t)

	for _, nav := range []func(){c.Next, c.Prev, func() { _ = c.JumpTo(3) }} {
		nav()
		select {
		case d := <-cd.resets:
			assert.Equal(t, DefaultInterval, d)
		case <-time.After(2 * time.Second):
			t.Fatal("countdown was not restarted after navigation")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestSingleImageKeepsTicking(t *testing.T) {
	clock := newFakeClock()
	changes, onChange := collect()
	c, err := New(images(1), onChange, clock.option())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cd := clock.wait(t)

	cd.c <- time.Now()
	select {
	case <-cd.resets:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown was not re-armed")
	}
	assert.Equal(t, 0, c.Active())
	assert.Empty(t, changes)

	cancel()
	require.NoError(t, <-done)
}

func TestRunStopsCountdownOnCancel(t *testing.T) {
	clock := newFakeClock()
	c, err := New(images(2), clock.option())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cd := clock.wait(t)
	assert.Eventually(t, c.Running, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	select {
	case <-cd.stopped:
	default:
		t.Fatal("countdown still armed after unmount")
	}
	assert.False(t, c.Running())
}

func TestRunTwice(t *testing.T) {
	clock := newFakeClock()
	c, err := New(images(2), clock.option())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	clock.wait(t)

	assert.ErrorIs(t, c.Run(ctx), ErrRunning)

	cancel()
	require.NoError(t, <-done)
}

func TestRealTimerAdvances(t *testing.T) {
	changes, onChange := collect()
	c, err := New(images(3), onChange, WithInterval(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	assert.Equal(t, 1, nextChange(t, changes).Index)
	assert.Equal(t, 2, nextChange(t, changes).Index)

	cancel()
	require.NoError(t, <-done)
}
