package run

import (
	"log/slog"
	"sync"
	"time"
)

// Controller is the Run Context shared by every engine of one lab: it owns the
// epoch counter and the running/paused flags.
//
// Two locks are involved. mu guards the flags and is held only for field
// access. gate serializes Commit against Start, Cancel and Finish, which is
// what guarantees that once Start returns, no Commit of an older token can run.
type Controller struct {
	gate sync.Mutex
	mu   sync.Mutex

	epoch   Token
	running bool
	paused  bool

	quantum   time.Duration
	poll      time.Duration
	observers []Observer
	logger    *slog.Logger
}

// NewController returns an idle controller (epoch 0, not running).
func NewController(opts ...Option) *Controller {
	c := &Controller{
		quantum: DefaultQuantum,
		poll:    DefaultPollInterval,
		logger:  nopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins a new execution attempt and returns its token.
// Every earlier token becomes stale; pending suspensions of older runs observe
// that within one quantum and abandon.
func (c *Controller) Start() Token {
	c.gate.Lock()
	c.mu.Lock()
	c.epoch++
	t := c.epoch
	c.running = true
	c.paused = false
	c.mu.Unlock()
	c.gate.Unlock()

	c.logger.Debug("run started", "token", t)
	for _, o := range c.observers {
		o.OnStart(t)
	}

	return t
}

// Pause suspends progress of the current run. It reports whether the flag
// changed: pausing an idle controller or an already paused run is a no-op.
func (c *Controller) Pause() bool {
	c.mu.Lock()
	if !c.running || c.paused {
		c.mu.Unlock()
		return false
	}
	c.paused = true
	t := c.epoch
	c.mu.Unlock()

	c.logger.Debug("run paused", "token", t)
	for _, o := range c.observers {
		o.OnPause(t)
	}

	return true
}

// Resume lifts a pause. Resuming a run that is not paused is a no-op.
func (c *Controller) Resume() bool {
	c.mu.Lock()
	if !c.running || !c.paused {
		c.mu.Unlock()
		return false
	}
	c.paused = false
	t := c.epoch
	c.mu.Unlock()

	c.logger.Debug("run resumed", "token", t)
	for _, o := range c.observers {
		o.OnResume(t)
	}

	return true
}

// Toggle pauses a running run or resumes a paused one and returns the new
// paused flag. It does nothing while idle.
func (c *Controller) Toggle() bool {
	if c.Pause() {
		return true
	}
	c.Resume()

	return c.Paused()
}

// Cancel stops the current run. Data owned by the run is left as is;
// clearing it is the caller's reset step.
func (c *Controller) Cancel() {
	c.gate.Lock()
	c.mu.Lock()
	was := c.running
	c.running = false
	c.paused = false
	t := c.epoch
	c.mu.Unlock()
	c.gate.Unlock()

	if !was {
		return
	}
	c.logger.Debug("run cancelled", "token", t)
	for _, o := range c.observers {
		o.OnCancel(t)
	}
}

// Finish marks a run that completed normally as no longer running.
// It returns false, and changes nothing, when t is not the live run.
func (c *Controller) Finish(t Token) bool {
	c.gate.Lock()
	defer c.gate.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if t != c.epoch || !c.running {
		return false
	}
	c.running = false
	c.paused = false

	return true
}

// IsCurrent reports whether t is the latest token handed out by Start.
func (c *Controller) IsCurrent(t Token) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return t == c.epoch
}

// Active reports whether t is current and its run has not been cancelled or finished.
func (c *Controller) Active(t Token) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return t == c.epoch && c.running
}

// Running reports whether any run is logically active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// Paused reports whether the active run is paused. Always false while idle.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running && c.paused
}

// Epoch returns the latest token handed out (0 before the first Start).
func (c *Controller) Epoch() Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.epoch
}

// Snapshot returns the flags read under a single lock.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{Epoch: c.epoch, Running: c.running, Paused: c.running && c.paused}
}

// Commit runs fn if and only if t is still the active run, and reports whether
// it did. Start, Cancel and Finish wait for an in-flight Commit, so fn observes
// and mutates shared state as the owner of the current run.
//
// fn must not call Start, Cancel, Finish or Commit on the same controller.
func (c *Controller) Commit(t Token, fn func()) bool {
	c.gate.Lock()
	defer c.gate.Unlock()

	if !c.Active(t) {
		return false
	}
	fn()

	return true
}

// liveness returns (active, paused) for t under one lock.
func (c *Controller) liveness(t Token) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := t == c.epoch && c.running

	return active, active && c.paused
}
