package hanoi

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// Option configures a Player.
type Option func(*Player)

// WithDelay sets the pause after each move. Negative values mean zero.
func WithDelay(d time.Duration) Option {
	return func(p *Player) { p.delay = max(d, 0) }
}

// WithSink routes visualization events to s.
func WithSink(s viz.Sink) Option {
	return func(p *Player) { p.sink = viz.OrNop(s) }
}

// WithController shares ctl instead of a private controller.
func WithController(ctl *run.Controller) Option {
	return func(p *Player) {
		if ctl != nil {
			p.ctl = ctl
		}
	}
}

// WithLogger configures the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Player replays a compiled instruction queue against a Towers model.
//
// Two drivers advance the cursor: the auto-play Task started by Start and
// Resume, which runs one instruction per tick while the run is active and
// unpaused, and Step, which runs exactly one instruction per call. Frame
// instructions cost no time; the task waits the configured delay after each
// move.
//
// Every auto-play task carries a driver id. Pause, Resume, Start and Reset
// bump it, so a tick from an older task never advances the cursor.
type Player struct {
	ctl    *run.Controller
	sink   viz.Sink
	logger *slog.Logger

	mu       sync.Mutex
	disks    int
	delay    time.Duration
	queue    []Instruction
	cursor   int
	towers   Towers
	frames   []Frame
	moves    int
	stepMode bool
	lastMove bool
	driver   uint64
	task     *run.Task
}

// NewPlayer returns a player with n disks stacked on peg A.
func NewPlayer(n int, opts ...Option) (*Player, error) {
	if err := ValidateDisks(n); err != nil {
		return nil, err
	}
	p := &Player{
		sink:   viz.Nop,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		delay:  DefaultDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ctl == nil {
		p.ctl = run.NewController()
	}
	p.disks = n
	p.resetLocked()

	return p, nil
}

// Controller returns the run controller the player drives.
func (p *Player) Controller() *run.Controller { return p.ctl }

// Reset cancels any run, stacks n disks on A and clears queue and cursor.
func (p *Player) Reset(n int) error {
	if err := ValidateDisks(n); err != nil {
		return err
	}
	p.ctl.Cancel()

	p.mu.Lock()
	t := p.detachLocked()
	p.disks = n
	p.resetLocked()
	p.sink.Emit(viz.Event{Kind: viz.RunReset})
	p.mu.Unlock()

	if t != nil {
		t.Stop()
	}
	p.logger.Debug("hanoi reset", "disks", n)

	return nil
}

// Start resumes a paused run; otherwise it resets, compiles the queue and
// begins auto-play from the first instruction.
func (p *Player) Start(ctx context.Context) {
	if p.ctl.Paused() {
		p.Resume(ctx)
		return
	}
	tok := p.ctl.Start()

	p.mu.Lock()
	old := p.detachLocked()
	p.resetLocked()
	p.queue = Compile(p.disks, A, C, B)
	id := p.driver
	p.sink.Emit(viz.Event{Kind: viz.RunReset})
	p.sink.Emit(viz.HeaderEvent("hanoi"))
	p.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	p.logger.Debug("hanoi started", "disks", p.disks, "token", tok)
	p.launch(ctx, tok, id)
}

// Pause stops the auto-play driver after the instruction in flight.
func (p *Player) Pause() bool {
	if !p.ctl.Pause() {
		return false
	}
	p.mu.Lock()
	t := p.detachLocked()
	p.mu.Unlock()
	if t != nil {
		t.Stop()
	}

	return true
}

// Resume restarts auto-play from the current cursor.
func (p *Player) Resume(ctx context.Context) bool {
	if !p.ctl.Resume() {
		return false
	}
	p.mu.Lock()
	old := p.detachLocked()
	id := p.driver
	p.mu.Unlock()
	if old != nil {
		old.Stop()
	}
	p.launch(ctx, p.ctl.Epoch(), id)

	return true
}

// Step executes exactly one instruction, pausing auto-play first and
// compiling the queue if there is none. It reports false once the queue is
// exhausted.
func (p *Player) Step() bool {
	if p.ctl.Running() && !p.ctl.Paused() {
		p.Pause()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.queue) == 0 {
		p.queue = Compile(p.disks, A, C, B)
	}
	if p.cursor >= len(p.queue) {
		return false
	}
	p.stepMode = true
	p.execLocked(p.queue[p.cursor])
	p.cursor++

	return true
}

// SetDelay changes the pause after moves; a running task picks it up on its next wait.
func (p *Player) SetDelay(d time.Duration) {
	p.mu.Lock()
	p.delay = max(d, 0)
	p.mu.Unlock()
}

// Wait blocks until the current auto-play task, if any, has exited.
func (p *Player) Wait() {
	p.mu.Lock()
	t := p.task
	p.mu.Unlock()
	if t != nil {
		t.Wait()
	}
}

// Snapshot returns a consistent copy of the player state.
func (p *Player) Snapshot() State {
	rs := p.ctl.Snapshot()

	p.mu.Lock()
	defer p.mu.Unlock()

	return State{
		Disks:      p.disks,
		Towers:     p.towers.snapshot(),
		Frames:     append([]Frame(nil), p.frames...),
		Moves:      p.moves,
		TotalMoves: MoveCount(p.disks),
		Cursor:     p.cursor,
		QueueLen:   len(p.queue),
		StepMode:   p.stepMode,
		Running:    rs.Running,
		Paused:     rs.Paused,
	}
}

func (p *Player) launch(ctx context.Context, tok run.Token, id uint64) {
	t := run.Repeat(ctx, p.interval, func() bool { return p.tick(tok, id) })

	p.mu.Lock()
	if p.driver == id {
		p.task = t
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	t.Stop()
}

// tick advances one instruction for driver id of run tok.
func (p *Player) tick(tok run.Token, id uint64) bool {
	var more, finished bool
	p.ctl.Commit(tok, func() {
		if p.ctl.Paused() {
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()

		if p.driver != id {
			return
		}
		if p.cursor < len(p.queue) {
			p.execLocked(p.queue[p.cursor])
			p.cursor++
		}
		more = p.cursor < len(p.queue)
		finished = !more
	})
	if finished && p.ctl.Finish(tok) {
		p.logger.Debug("hanoi finished", "token", tok)
	}

	return more
}

func (p *Player) interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastMove {
		return p.delay
	}

	return 0
}

// execLocked applies one instruction to the model and emits its event.
func (p *Player) execLocked(in Instruction) {
	p.lastMove = in.Op == Move

	switch in.Op {
	case Push:
		p.frames = append(p.frames, in.Frame)
		p.sink.Emit(viz.Event{Kind: viz.FramePushed, Frame: in.Frame.Text(), Status: in.Frame.Status, Depth: len(p.frames)})
	case Base:
		if len(p.frames) > 0 {
			p.frames[len(p.frames)-1] = in.Frame
		}
		p.sink.Emit(viz.Event{Kind: viz.FrameUpdated, Frame: in.Frame.Text(), Status: in.Frame.Status, Depth: len(p.frames)})
	case Move:
		disk, err := p.towers.Move(in.From, in.To)
		if err != nil {
			p.logger.Error("hanoi move rejected", "instruction", in.String(), "error", err)
			return
		}
		p.moves++
		p.sink.Emit(viz.Event{Kind: viz.DiskMoved, Disk: disk, FromPeg: in.From.String(), ToPeg: in.To.String(), Moves: p.moves})
	case Pop:
		depth := len(p.frames)
		if depth > 0 {
			p.frames = p.frames[:depth-1]
		}
		p.sink.Emit(viz.Event{Kind: viz.FramePopped, Frame: in.Frame.Text(), Status: in.Frame.Status, Depth: depth})
	}
}

// detachLocked invalidates the current driver and hands back its task.
func (p *Player) detachLocked() *run.Task {
	p.driver++
	t := p.task
	p.task = nil

	return t
}

func (p *Player) resetLocked() {
	p.towers = NewTowers(p.disks)
	p.queue = nil
	p.cursor = 0
	p.frames = nil
	p.moves = 0
	p.stepMode = false
	p.lastMove = false
}
