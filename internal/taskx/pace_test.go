package taskx

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingIndicator struct {
	ticks atomic.Int64
	stops atomic.Int64
}

func (c *countingIndicator) Tick() { c.ticks.Add(1) }
func (c *countingIndicator) Stop() { c.stops.Add(1) }

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time        { return c.t }
func (c *fakeClock) sleep(d time.Duration) { c.t = c.t.Add(d) }
func (c *fakeClock) pacer(interval, floor time.Duration) Pacer {
	return Pacer{Interval: interval, MinVisible: floor, sleep: c.sleep, now: c.now}
}

func finishedTask[T any](started time.Time, r Result[T]) *Task[T] {
	t := &Task[T]{done: make(chan Result[T], 1), started: started}
	t.done <- r
	return t
}

func TestAwait_KeepsTickingUntilFloor(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	task := finishedTask(clock.now(), Result[string]{Value: "done"})
	ind := &countingIndicator{}

	r := Await(clock.pacer(10*time.Millisecond, 100*time.Millisecond), ind, task)

	assert.Equal(t, "done", r.Value)
	assert.EqualValues(t, 10, ind.ticks.Load())
	assert.EqualValues(t, 1, ind.stops.Load())
	assert.Equal(t, 100*time.Millisecond, clock.now().Sub(task.Started()))
}

func TestAwait_NoExtraTicksPastFloor(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	started := clock.now().Add(-time.Second)
	task := finishedTask(started, Result[int]{Value: 1})
	ind := &countingIndicator{}

	r := Await(clock.pacer(10*time.Millisecond, 100*time.Millisecond), ind, task)

	assert.Equal(t, 1, r.Value)
	assert.EqualValues(t, 0, ind.ticks.Load())
	assert.EqualValues(t, 1, ind.stops.Load())
}

func TestRun_ReturnsResultUnchanged(t *testing.T) {
	p := Pacer{Interval: time.Millisecond, MinVisible: 0}

	v, err := Run(p, NopIndicator{}, func() (int, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	boom := errors.New("remote said no")
	_, err = Run(p, NopIndicator{}, func() (int, error) { return 0, boom })
	assert.Same(t, boom, err)
}

func TestRun_RespectsMinVisibleForInstantOperation(t *testing.T) {
	const floor = 60 * time.Millisecond
	p := Pacer{Interval: 5 * time.Millisecond, MinVisible: floor}
	ind := &countingIndicator{}

	start := time.Now()
	v, err := Run(p, ind, func() (string, error) { return "fast", nil })
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "fast", v)
	assert.GreaterOrEqual(t, elapsed, floor)
	assert.Positive(t, ind.ticks.Load())
	assert.EqualValues(t, 1, ind.stops.Load())
}

func TestRun_PanicReturnsNoResult(t *testing.T) {
	p := Pacer{Interval: time.Millisecond}
	_, err := Run(p, NopIndicator{}, func() (int, error) { panic("bad") })
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestAwait_NeverCompletingOperationKeepsPolling(t *testing.T) {
	release := make(chan struct{})
	ind := &countingIndicator{}
	p := Pacer{Interval: 2 * time.Millisecond}

	done := make(chan Result[int], 1)
	go func() {
		done <- Await(p, ind, Go(func() (int, error) {
			<-release
			return 3, nil
		}))
	}()

	select {
	case <-done:
		t.Fatal("Await returned before the operation completed")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Positive(t, ind.ticks.Load())
	assert.EqualValues(t, 0, ind.stops.Load())

	// Unblock the operation so the goroutine does not leak past the test.
	close(release)
	select {
	case r := <-done:
		assert.Equal(t, 3, r.Value)
	case <-time.After(2 * time.Second):
		t.Fatal("Await did not return after release")
	}
}
