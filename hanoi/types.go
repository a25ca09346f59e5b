package hanoi

import (
	"errors"
	"fmt"
	"time"
)

// Disk count bounds and default pacing.
const (
	MinDisks = 1
	MaxDisks = 10

	// DefaultDelay is the pause after every disk move during auto-play.
	DefaultDelay = 800 * time.Millisecond
)

// Frame statuses shown on the call stack.
const (
	StatusActive    = "active"
	StatusBaseCase  = "base-case"
	StatusCompleted = "completed"
)

var (
	// ErrDiskCount indicates a disk count outside MinDisks..MaxDisks.
	ErrDiskCount = errors.New("hanoi: disk count out of range")

	// ErrIllegalMove indicates a move from an empty peg or onto a smaller disk.
	ErrIllegalMove = errors.New("hanoi: illegal move")
)

// Peg names one of the three towers.
type Peg byte

const (
	A Peg = 'A'
	B Peg = 'B'
	C Peg = 'C'
)

func (p Peg) String() string { return string(rune(p)) }

func (p Peg) index() int { return int(p - A) }

func (p Peg) valid() bool { return p >= A && p <= C }

// Op is the instruction kind.
type Op int

const (
	// Push enters a call frame.
	Push Op = iota
	// Base marks the current frame as the n == 1 base case.
	Base
	// Move transfers Disk from From to To.
	Move
	// Pop completes and leaves the current frame.
	Pop
)

func (o Op) String() string {
	switch o {
	case Push:
		return "push"
	case Base:
		return "base"
	case Move:
		return "move"
	case Pop:
		return "pop"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Frame describes one call of the recursive solve.
type Frame struct {
	N        int
	From, To Peg
	Status   string
}

// Text renders the frame the way the call stack shows it.
func (f Frame) Text() string {
	return fmt.Sprintf("hanoi(%d, %s → %s)", f.N, f.From, f.To)
}

// Instruction is one replayable step. Frame is set for Push, Base and Pop;
// Disk, From and To for Move.
type Instruction struct {
	Op       Op
	Frame    Frame
	Disk     int
	From, To Peg
}

func (in Instruction) String() string {
	if in.Op == Move {
		return fmt.Sprintf("move %d %s→%s", in.Disk, in.From, in.To)
	}

	return fmt.Sprintf("%s %s [%s]", in.Op, in.Frame.Text(), in.Frame.Status)
}

// State is a snapshot of the player.
type State struct {
	Disks      int
	Towers     [3][]int
	Frames     []Frame
	Moves      int
	TotalMoves int
	Cursor     int
	QueueLen   int
	StepMode   bool
	Running    bool
	Paused     bool
}

// Depth is the current recursion depth.
func (s State) Depth() int { return len(s.Frames) }

// Done reports whether the whole queue has been replayed.
func (s State) Done() bool { return s.QueueLen > 0 && s.Cursor >= s.QueueLen }

// ValidateDisks checks n against MinDisks..MaxDisks.
func ValidateDisks(n int) error {
	if n < MinDisks || n > MaxDisks {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrDiskCount, n, MinDisks, MaxDisks)
	}

	return nil
}
