package run_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algoviz/run"
)

func TestRepeat_StopsWhenTickDeclines(t *testing.T) {
	var n atomic.Int32
	task := run.Repeat(context.Background(),
		func() time.Duration { return time.Millisecond },
		func() bool { return n.Add(1) < 5 },
	)

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}
	assert.EqualValues(t, 5, n.Load())
}

func TestRepeat_Stop(t *testing.T) {
	var n atomic.Int32
	task := run.Repeat(context.Background(),
		func() time.Duration { return time.Hour },
		func() bool { n.Add(1); return true },
	)
	task.Stop()
	task.Wait()
	assert.EqualValues(t, 1, n.Load(), "first tick runs immediately, none after Stop")
}

func TestRepeat_EndedParentSkipsFirstTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var n atomic.Int32
	task := run.Repeat(ctx,
		func() time.Duration { return time.Millisecond },
		func() bool { n.Add(1); return true },
	)
	task.Wait()
	assert.Zero(t, n.Load())
}

func TestRepeat_ParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := run.Repeat(ctx,
		func() time.Duration { return time.Hour },
		func() bool { return true },
	)
	cancel()

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task outlived its context")
	}
}

func TestRepeat_GatedByController(t *testing.T) {
	c := run.NewController()
	tok := c.Start()

	var n atomic.Int32
	task := run.Repeat(context.Background(),
		func() time.Duration { return time.Millisecond },
		func() bool {
			return c.Commit(tok, func() {
				if n.Add(1) == 3 {
					c.Pause()
				}
			}) && !c.Paused()
		},
	)
	task.Wait()
	assert.EqualValues(t, 3, n.Load())
}
