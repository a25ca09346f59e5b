package run

import (
	"context"
	"time"
)

// Task is a cancelable repeating job: it calls tick, waits interval(), and
// repeats until tick returns false, Stop is called, or the parent context ends.
//
// The interval is read again before every wait, so a caller can change pacing
// while the task runs. Gating on run state belongs in tick: a tick that finds
// its run stale or paused returns false and the task ends.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Repeat starts a Task on its own goroutine. The first tick runs immediately
// unless the parent context has already ended; Stop only prevents later ticks.
func Repeat(ctx context.Context, interval func() time.Duration, tick func() bool) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		if parent.Err() != nil || !tick() {
			return
		}
		for sleep(ctx, interval()) {
			if ctx.Err() != nil || !tick() {
				return
			}
		}
	}()

	return t
}

// Stop cancels the task. A tick already executing finishes, and so does the
// first tick if it has not started yet; no further tick starts.
func (t *Task) Stop() { t.cancel() }

// Done is closed once the task goroutine has exited.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task goroutine has exited.
func (t *Task) Wait() { <-t.done }
