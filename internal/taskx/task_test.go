package taskx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitResult[T any](t *testing.T, task *Task[T]) Result[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := task.Poll(); ok {
			return r
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("task did not finish in time")
	return Result[T]{}
}

func TestGo_DeliversValue(t *testing.T) {
	task := Go(func() (string, error) { return "ok", nil })

	r := waitResult(t, task)
	require.NoError(t, r.Err)
	assert.Equal(t, "ok", r.Value)
}

func TestGo_DeliversError(t *testing.T) {
	boom := errors.New("boom")
	task := Go(func() (int, error) { return 0, boom })

	r := waitResult(t, task)
	assert.ErrorIs(t, r.Err, boom)
}

func TestGo_PanicSurfacesAsNoResult(t *testing.T) {
	task := Go(func() (int, error) { panic("producer died") })

	r := waitResult(t, task)
	require.Error(t, r.Err)
	assert.ErrorIs(t, r.Err, ErrNoResult)
	assert.Contains(t, r.Err.Error(), "producer died")
}

func TestPoll_NonBlockingWhileRunning(t *testing.T) {
	release := make(chan struct{})
	task := Go(func() (int, error) {
		<-release
		return 7, nil
	})

	_, ok := task.Poll()
	assert.False(t, ok)

	close(release)
	r := waitResult(t, task)
	assert.Equal(t, 7, r.Value)
}

func TestPoll_ResultObservedOnce(t *testing.T) {
	task := Go(func() (int, error) { return 42, nil })
	first := waitResult(t, task)

	second, ok := task.Poll()
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.NoError(t, second.Err)
}
