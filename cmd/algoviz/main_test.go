package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/hanoi"
	"github.com/katalvlaran/algoviz/lab"
	"github.com/katalvlaran/algoviz/metrics"
)

// fakeRemote records the commands it receives.
type fakeRemote struct {
	mu     sync.Mutex
	cmds   []string
	manual bool
}

func (f *fakeRemote) add(c string) {
	f.mu.Lock()
	f.cmds = append(f.cmds, c)
	f.mu.Unlock()
}

func (f *fakeRemote) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.cmds...)
}

func (f *fakeRemote) Pause() bool  { f.add("pause"); return true }
func (f *fakeRemote) Resume() bool { f.add("resume"); return true }
func (f *fakeRemote) Toggle() bool { f.add("toggle"); return true }
func (f *fakeRemote) Cancel()      { f.add("cancel") }
func (f *fakeRemote) Step() bool   { f.add("step"); return true }
func (f *fakeRemote) Manual() bool { return f.manual }

func TestReadControls(t *testing.T) {
	rc := &fakeRemote{}
	readControls(context.Background(), strings.NewReader("p\nr x\nt \n  \ns\nq\np\n"), rc, nil)

	assert.Equal(t, []string{"pause", "resume", "toggle", "toggle", "step", "cancel"}, rc.commands(),
		"unknown keys and spaces are ignored, a blank line toggles, nothing is read after q")
}

func TestReadControls_SpaceInLineDoesNotToggle(t *testing.T) {
	rc := &fakeRemote{}
	readControls(context.Background(), strings.NewReader("p r\n"), rc, nil)

	assert.Equal(t, []string{"pause", "resume"}, rc.commands())
}

func TestDriveWith_ManualStepperEndsWithReader(t *testing.T) {
	for name, in := range map[string]string{"quit": "s\nq\n", "eof": "s\n"} {
		t.Run(name, func(t *testing.T) {
			p, err := hanoi.NewPlayer(3, hanoi.WithDelay(0))
			require.NoError(t, err)
			rc := &hanoiRemote{p: p, manual: true}

			done := make(chan error, 1)
			go func() {
				done <- driveWith(context.Background(), strings.NewReader(in), rc, func(ctx context.Context) error {
					waitPlayer(ctx, p, true)
					return nil
				})
			}()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(2 * time.Second):
				t.Fatal("step mode kept waiting after the controls ended")
			}
			st := p.Snapshot()
			assert.Equal(t, 1, st.Cursor)
			assert.False(t, st.Done())
		})
	}
}

func TestDriveWith_AutoStepperOutlivesReader(t *testing.T) {
	rc := &fakeRemote{}
	release := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- driveWith(context.Background(), strings.NewReader("p\n"), rc, func(ctx context.Context) error {
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	assert.NoError(t, <-done, "input running dry must not end an auto-play run")
	assert.Equal(t, []string{"pause"}, rc.commands())
}

func TestDriveWith_StopsReaderWhenWorkEnds(t *testing.T) {
	rc := &fakeRemote{}
	// a reader that never yields a line
	pr := blockingReader{}

	done := make(chan error, 1)
	go func() {
		done <- driveWith(context.Background(), pr, rc, func(ctx context.Context) error {
			return nil
		})
	}()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("drive did not return after work finished")
	}
}

func TestDriveWith_PropagatesWorkError(t *testing.T) {
	boom := errors.New("boom")
	err := driveWith(context.Background(), nil, &fakeRemote{}, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestDumpMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.RunStarted("sort", "quick")

	var buf bytes.Buffer
	require.NoError(t, dumpMetrics(&buf, reg))
	assert.Contains(t, buf.String(), `algoviz_runs_started_total{algorithm="quick",lab="sort"} 1`)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &lab.Report{
		Lab:       "graph",
		Algorithm: "dijkstra",
		Outcome:   metrics.OutcomeCompleted,
		Order:     []int{0, 1},
		Dist:      []int64{0, 4, 1<<63 - 1},
		Path:      []int{0, 1},
	})
	out := buf.String()
	assert.Contains(t, out, "dijkstra")
	assert.Contains(t, out, "[0 4 ∞]")
	assert.Contains(t, out, "path")
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), out.String())

	return out.String()
}

func TestCLI_Sort(t *testing.T) {
	out := execute(t, "sort", "--values", "5 3 8 1", "--algo", "bubble", "--speed", "1000", "--no-color", "--metrics")
	assert.Contains(t, out, "values: [5 3 8 1]")
	assert.Contains(t, out, "Bubble Sort")
	assert.Contains(t, out, "[1 3 5 8]")
	assert.Contains(t, out, `algoviz_runs_finished_total{lab="sort",outcome="completed"} 1`)
}

func TestCLI_Graph(t *testing.T) {
	out := execute(t, "graph", "--nodes", "3", "--edge", "0 1 4", "--edge", "1 2 1", "--edge", "0 2 10",
		"--algo", "dijkstra", "--delay", "0s", "--no-color")
	assert.Contains(t, out, "DIJKSTRA")
	assert.Contains(t, out, "[0 4 5]")
	assert.Contains(t, out, "completed")
}

func TestCLI_Hanoi(t *testing.T) {
	out := execute(t, "hanoi", "--disks", "2", "--delay", "0s", "--no-color")
	assert.Contains(t, out, "hanoi: 2 disks, 3 moves")
	assert.Contains(t, out, "moves: 3/3")
}

func TestCLI_Version(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "algoviz version")
}
