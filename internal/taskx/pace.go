package taskx

import "time"

const (
	DefaultInterval   = 80 * time.Millisecond
	DefaultMinVisible = 1500 * time.Millisecond
)

// Indicator is a progress display advanced one frame per tick.
type Indicator interface {
	Tick()
	Stop()
}

// Pacer controls how Await polls and how long the indicator stays visible.
type Pacer struct {
	// Interval is the sleep between polls and between frames.
	Interval time.Duration
	// MinVisible is the minimum time from dispatch to return.
	MinVisible time.Duration

	// sleep and now are replaced in tests.
	sleep func(time.Duration)
	now   func() time.Time
}

// DefaultPacer ticks every 80ms and keeps the indicator up for at least 1.5s.
func DefaultPacer() Pacer {
	return Pacer{Interval: DefaultInterval, MinVisible: DefaultMinVisible}
}

func (p Pacer) pause() {
	if p.sleep != nil {
		p.sleep(p.Interval)
		return
	}
	time.Sleep(p.Interval)
}

func (p Pacer) since(t time.Time) time.Duration {
	if p.now != nil {
		return p.now().Sub(t)
	}
	return time.Since(t)
}

// Await polls task until it has a result, ticking ind on every empty poll.
// Once the result is in, it keeps ticking (without polling again) until
// MinVisible has elapsed since dispatch, then stops ind and returns the
// result unchanged.
func Await[T any](p Pacer, ind Indicator, task *Task[T]) Result[T] {
	for {
		res, ok := task.Poll()
		if ok {
			for p.since(task.Started()) < p.MinVisible {
				ind.Tick()
				p.pause()
			}
			ind.Stop()
			return res
		}
		ind.Tick()
		p.pause()
	}
}

// Run dispatches op and awaits it with p and ind.
func Run[T any](p Pacer, ind Indicator, op func() (T, error)) (T, error) {
	res := Await(p, ind, Go(op))
	return res.Value, res.Err
}

// NopIndicator draws nothing.
type NopIndicator struct{}

func (NopIndicator) Tick() {}
func (NopIndicator) Stop() {}
