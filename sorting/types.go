package sorting

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// Bar scale defaults.
const (
	// DefaultMaxHeight is the height of the tallest bar.
	DefaultMaxHeight = 300.0

	// DefaultMinHeight keeps small values visible.
	DefaultMinHeight = 10.0

	// MinDelay is the floor of the pacing interval.
	MinDelay = 10 * time.Millisecond
)

// ErrEmptySequence is returned when a Helper is built without a sequence.
var ErrEmptySequence = errors.New("sorting: sequence is nil")

// Element is one sortable value. ID is the position the element had when the
// sequence was created, so equal values can be told apart.
type Element struct {
	Value int
	ID    int
}

// Tag is the cosmetic state of a cell.
type Tag int

const (
	// TagNone is an untouched cell.
	TagNone Tag = iota
	// TagMarked is the scan cursor.
	TagMarked
	// TagSpecial is a pivot or tentative minimum.
	TagSpecial
	// TagDone is a cell in its final position.
	TagDone
)

// DelayForSpeed converts a speed value to a pacing interval:
// max(10ms, floor(400/speed) ms). Non-positive speeds count as 1.
func DelayForSpeed(speed float64) time.Duration {
	if speed <= 0 || math.IsNaN(speed) {
		speed = 1
	}
	ms := math.Floor(400 / speed)

	return max(MinDelay, time.Duration(ms)*time.Millisecond)
}

// Option configures a Helper.
type Option func(*Options)

// Options holds the run binding, pacing and sinks of a Helper.
type Options struct {
	Ctx   context.Context
	Run   *run.Controller
	Token run.Token

	// Delay is the pacing interval of Compare, Swap and Write.
	Delay time.Duration

	Sink viz.Sink
	Cue  viz.Cue

	MaxHeight float64
	MinHeight float64
}

// DefaultOptions returns speed-1 pacing, the default bar scale and silent sinks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Delay:     DelayForSpeed(1),
		Sink:      viz.Nop,
		Cue:       viz.NopCue,
		MaxHeight: DefaultMaxHeight,
		MinHeight: DefaultMinHeight,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRun binds the Helper to run t of ctl.
func WithRun(ctl *run.Controller, t run.Token) Option {
	return func(o *Options) {
		o.Run = ctl
		o.Token = t
	}
}

// WithSpeed sets the pacing from a speed value, see DelayForSpeed.
func WithSpeed(speed float64) Option {
	return func(o *Options) {
		o.Delay = DelayForSpeed(speed)
	}
}

// WithDelay sets the pacing interval directly. Negative values mean zero.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		o.Delay = max(d, 0)
	}
}

// WithSink routes visualization events to s.
func WithSink(s viz.Sink) Option {
	return func(o *Options) {
		o.Sink = viz.OrNop(s)
	}
}

// WithCue sets the swap notification.
func WithCue(c viz.Cue) Option {
	return func(o *Options) {
		if c != nil {
			o.Cue = c
		}
	}
}

// WithScale sets the bar scale. Non-positive values keep the defaults.
func WithScale(maxHeight, minHeight float64) Option {
	return func(o *Options) {
		if maxHeight > 0 {
			o.MaxHeight = maxHeight
		}
		if minHeight > 0 {
			o.MinHeight = minHeight
		}
	}
}
