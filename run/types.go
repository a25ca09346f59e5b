package run

import (
	"io"
	"log/slog"
	"time"
)

// Default pacing granularity.
const (
	// DefaultQuantum is the slice a Suspend is cut into; pause and cancel are
	// observed at least once per quantum.
	DefaultQuantum = 50 * time.Millisecond

	// DefaultPollInterval is how often a paused Suspend re-checks for resume.
	DefaultPollInterval = 100 * time.Millisecond
)

// Token identifies one execution attempt. A token is current while it equals
// the controller epoch; any Start makes every earlier token stale.
type Token uint64

// Outcome is the result of a Suspend.
type Outcome int

const (
	// Completed means the full duration elapsed while the run stayed live.
	Completed Outcome = iota

	// Abandoned means the run was superseded, cancelled, or its context ended.
	// The caller must stop without further mutation.
	Abandoned
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// State is a consistent snapshot of the controller flags.
type State struct {
	Epoch   Token
	Running bool
	Paused  bool
}

// Observer receives controller transitions. Callbacks run after the
// controller has released its locks, so they may query the controller.
type Observer interface {
	OnStart(t Token)
	OnPause(t Token)
	OnResume(t Token)
	OnCancel(t Token)
}

// ObserverFuncs adapts plain functions to Observer; nil fields are skipped.
type ObserverFuncs struct {
	Start  func(Token)
	Pause  func(Token)
	Resume func(Token)
	Cancel func(Token)
}

func (o ObserverFuncs) OnStart(t Token) {
	if o.Start != nil {
		o.Start(t)
	}
}

func (o ObserverFuncs) OnPause(t Token) {
	if o.Pause != nil {
		o.Pause(t)
	}
}

func (o ObserverFuncs) OnResume(t Token) {
	if o.Resume != nil {
		o.Resume(t)
	}
}

func (o ObserverFuncs) OnCancel(t Token) {
	if o.Cancel != nil {
		o.Cancel(t)
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithQuantum sets the suspension quantum. Non-positive values are ignored.
func WithQuantum(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.quantum = d
		}
	}
}

// WithPollInterval sets the paused re-check interval. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.poll = d
		}
	}
}

// WithObserver registers o for controller transitions.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithLogger configures the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
