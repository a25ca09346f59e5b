package hanoi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/hanoi"
	"github.com/katalvlaran/algoviz/viz"
)

type move struct {
	disk     int
	from, to hanoi.Peg
}

func movesOf(q []hanoi.Instruction) []move {
	var out []move
	for _, in := range q {
		if in.Op == hanoi.Move {
			out = append(out, move{in.Disk, in.From, in.To})
		}
	}

	return out
}

func TestCompile_Examples(t *testing.T) {
	assert.Equal(t, []move{{1, hanoi.A, hanoi.C}}, movesOf(hanoi.Compile(1, hanoi.A, hanoi.C, hanoi.B)))
	assert.Equal(t, []move{
		{1, hanoi.A, hanoi.B},
		{2, hanoi.A, hanoi.C},
		{1, hanoi.B, hanoi.C},
	}, movesOf(hanoi.Compile(2, hanoi.A, hanoi.C, hanoi.B)))

	ops := func(q []hanoi.Instruction) []hanoi.Op {
		out := make([]hanoi.Op, len(q))
		for i, in := range q {
			out[i] = in.Op
		}
		return out
	}
	assert.Equal(t, []hanoi.Op{hanoi.Push, hanoi.Base, hanoi.Move, hanoi.Pop}, ops(hanoi.Compile(1, hanoi.A, hanoi.C, hanoi.B)))
	assert.Empty(t, hanoi.Compile(0, hanoi.A, hanoi.C, hanoi.B))
}

func TestCompile_QueueShape(t *testing.T) {
	for n := 1; n <= hanoi.MaxDisks; n++ {
		q := hanoi.Compile(n, hanoi.A, hanoi.C, hanoi.B)
		counts := map[hanoi.Op]int{}
		for _, in := range q {
			counts[in.Op]++
		}
		moves := hanoi.MoveCount(n)
		assert.Equal(t, 1<<n-1, moves)
		assert.Equal(t, moves, counts[hanoi.Move], "n=%d", n)
		assert.Equal(t, 3*moves, counts[hanoi.Push]+counts[hanoi.Move]+counts[hanoi.Pop], "n=%d", n)
		assert.Equal(t, 1<<(n-1), counts[hanoi.Base], "n=%d", n)

		// replaying the moves keeps every stack ordered and ends on C
		tw := hanoi.NewTowers(n)
		for _, m := range movesOf(q) {
			disk, err := tw.Move(m.from, m.to)
			require.NoError(t, err)
			require.Equal(t, m.disk, disk)
		}
		assert.Empty(t, tw.Stack(hanoi.A))
		assert.Empty(t, tw.Stack(hanoi.B))
		assert.Len(t, tw.Stack(hanoi.C), n)
	}
}

func TestTowers_IllegalMoves(t *testing.T) {
	tw := hanoi.NewTowers(2)
	assert.Equal(t, []int{2, 1}, tw.Stack(hanoi.A))

	_, err := tw.Move(hanoi.B, hanoi.C)
	assert.ErrorIs(t, err, hanoi.ErrIllegalMove)

	_, err = tw.Move(hanoi.A, hanoi.B)
	require.NoError(t, err)
	_, err = tw.Move(hanoi.A, hanoi.B)
	assert.ErrorIs(t, err, hanoi.ErrIllegalMove, "2 cannot sit on 1")

	_, err = tw.Move(hanoi.A, hanoi.A)
	assert.ErrorIs(t, err, hanoi.ErrIllegalMove)
}

func TestNewPlayer_DiskBounds(t *testing.T) {
	_, err := hanoi.NewPlayer(0)
	assert.ErrorIs(t, err, hanoi.ErrDiskCount)
	_, err = hanoi.NewPlayer(11)
	assert.ErrorIs(t, err, hanoi.ErrDiskCount)

	p, err := hanoi.NewPlayer(3)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Reset(42), hanoi.ErrDiskCount)
	assert.Equal(t, 3, p.Snapshot().Disks, "rejected reset changes nothing")
}

func TestPlayer_AutoPlay(t *testing.T) {
	rec := &viz.Recorder{}
	p, err := hanoi.NewPlayer(3, hanoi.WithDelay(0), hanoi.WithSink(rec))
	require.NoError(t, err)

	p.Start(context.Background())
	p.Wait()

	s := p.Snapshot()
	assert.True(t, s.Done())
	assert.False(t, s.Running)
	assert.Equal(t, 7, s.Moves)
	assert.Equal(t, 7, s.TotalMoves)
	assert.Equal(t, []int{3, 2, 1}, s.Towers[2])
	assert.Zero(t, s.Depth())
	assert.Equal(t, 7, rec.Count(viz.DiskMoved))
	assert.Equal(t, 7, rec.Count(viz.FramePushed))
	assert.Equal(t, 7, rec.Count(viz.FramePopped))
	assert.Equal(t, 4, rec.Count(viz.FrameUpdated))
}

func TestPlayer_StepExamples(t *testing.T) {
	rec := &viz.Recorder{}
	p, err := hanoi.NewPlayer(1, hanoi.WithSink(rec))
	require.NoError(t, err)

	for p.Step() {
	}
	s := p.Snapshot()
	assert.True(t, s.StepMode)
	assert.Equal(t, 4, s.QueueLen)
	assert.Equal(t, []int{1}, s.Towers[2])

	var got []string
	for _, e := range rec.Events() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{
		"frame_pushed hanoi(1, A → C) [active] depth=1",
		"frame_updated hanoi(1, A → C) [base-case] depth=1",
		"disk_moved disk=1 A->C moves=1",
		"frame_popped hanoi(1, A → C) [completed] depth=1",
	}, got)
}

func TestPlayer_StepPausesAutoPlay(t *testing.T) {
	p, err := hanoi.NewPlayer(4, hanoi.WithDelay(time.Hour))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	// frame instructions are free; the first move then waits an hour
	require.Eventually(t, func() bool { return p.Snapshot().Moves == 1 }, time.Second, time.Millisecond)

	require.True(t, p.Step())
	s := p.Snapshot()
	assert.True(t, s.Paused)
	assert.True(t, s.StepMode)
	cursor := s.Cursor

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, cursor, p.Snapshot().Cursor, "auto-play stays stopped while paused")
}

func TestPlayer_PauseResumeKeepsCursor(t *testing.T) {
	p, err := hanoi.NewPlayer(3, hanoi.WithDelay(5*time.Millisecond))
	require.NoError(t, err)
	ctx := context.Background()

	p.Start(ctx)
	require.Eventually(t, func() bool { return p.Snapshot().Moves >= 2 }, 2*time.Second, time.Millisecond)
	require.True(t, p.Pause())
	assert.False(t, p.Pause(), "second pause is a no-op")

	before := p.Snapshot()
	time.Sleep(30 * time.Millisecond)
	after := p.Snapshot()
	assert.Equal(t, before.Cursor, after.Cursor)
	assert.True(t, after.Paused)

	// Start while paused resumes instead of restarting
	p.Start(ctx)
	assert.GreaterOrEqual(t, p.Snapshot().Moves, before.Moves)
	require.Eventually(t, func() bool { return p.Snapshot().Done() }, 2*time.Second, time.Millisecond)
	assert.Equal(t, 7, p.Snapshot().Moves)
	assert.Equal(t, []int{3, 2, 1}, p.Snapshot().Towers[2])
}

func TestPlayer_ResetStopsAutoPlay(t *testing.T) {
	rec := &viz.Recorder{}
	p, err := hanoi.NewPlayer(5, hanoi.WithDelay(2*time.Millisecond), hanoi.WithSink(rec))
	require.NoError(t, err)

	p.Start(context.Background())
	require.Eventually(t, func() bool { return p.Snapshot().Moves >= 1 }, time.Second, time.Millisecond)
	require.NoError(t, p.Reset(2))
	p.Wait()

	s := p.Snapshot()
	assert.Equal(t, 2, s.Disks)
	assert.Zero(t, s.Cursor)
	assert.Zero(t, s.QueueLen)
	assert.Zero(t, s.Moves)
	assert.Equal(t, []int{2, 1}, s.Towers[0])
	assert.False(t, s.Running)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, p.Snapshot().Moves, "stale ticks do nothing after reset")
}

func TestPlayer_ContextCancelStops(t *testing.T) {
	p, err := hanoi.NewPlayer(6, hanoi.WithDelay(time.Millisecond))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)
	cancel()
	p.Wait()
	moves := p.Snapshot().Moves
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, moves, p.Snapshot().Moves)
	assert.Less(t, moves, hanoi.MoveCount(6))
}

func TestPlayer_SetDelay(t *testing.T) {
	p, err := hanoi.NewPlayer(2, hanoi.WithDelay(time.Hour))
	require.NoError(t, err)

	p.Start(context.Background())
	require.Eventually(t, func() bool { return p.Snapshot().Moves == 1 }, time.Second, time.Millisecond)
	p.SetDelay(0)
	// the hour-long wait already in progress is cut short by a pause/resume
	require.True(t, p.Pause())
	require.True(t, p.Resume(context.Background()))
	p.Wait()
	assert.Equal(t, 3, p.Snapshot().Moves)
}
