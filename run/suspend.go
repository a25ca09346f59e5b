package run

import (
	"context"
	"time"
)

// Suspend is the single place where engine code yields. It waits d of
// unpaused time on behalf of run t, cut into quanta:
//
//  1. If t is no longer active or ctx is done, return Abandoned at once.
//  2. If the run is paused, wait one poll interval; paused time does not count.
//  3. Otherwise wait min(quantum, remaining) and add it to the elapsed total.
//  4. Once elapsed >= d, return Completed.
//
// A non-positive d performs only the liveness check. Callers must still
// re-check liveness (usually through Commit) before mutating after a Completed.
func (c *Controller) Suspend(ctx context.Context, t Token, d time.Duration) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	var elapsed time.Duration
	for {
		active, paused := c.liveness(t)
		if !active || ctx.Err() != nil {
			return Abandoned
		}
		if elapsed >= d {
			return Completed
		}
		if paused {
			if !sleep(ctx, c.poll) {
				return Abandoned
			}
			continue
		}

		step := c.quantum
		if rem := d - elapsed; rem < step {
			step = rem
		}
		if !sleep(ctx, step) {
			return Abandoned
		}
		elapsed += step
	}
}

// sleep waits d or until ctx is done; it reports false when ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
