package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

func TestMetrics_SinkAndCue(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	rec := &viz.Recorder{}
	sink := m.Sink(rec)
	sink.Emit(viz.Event{Kind: viz.NodeVisited})
	sink.Emit(viz.Event{Kind: viz.NodeVisited})
	sink.Emit(viz.Event{Kind: viz.CellSwapped})
	assert.Equal(t, 3, len(rec.Events()), "events are forwarded")

	rang := 0
	cue := m.Cue(viz.CueFunc(func() { rang++ }))
	cue.Swap()
	cue.Swap()
	assert.Equal(t, 2, rang)

	expected := `
# HELP algoviz_events_total Total presentation events by kind
# TYPE algoviz_events_total counter
algoviz_events_total{kind="cell_swapped"} 1
algoviz_events_total{kind="node_visited"} 2
# HELP algoviz_swap_cues_total Total audio cues played on swaps
# TYPE algoviz_swap_cues_total counter
algoviz_swap_cues_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"algoviz_events_total", "algoviz_swap_cues_total"))
}

func TestMetrics_Runs(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RunStarted("graph", "bfs")
	m.RunFinished("graph", metrics.OutcomeAbandoned, 20*time.Millisecond)
	m.RunStarted("graph", "bfs")
	m.RunFinished("graph", metrics.OutcomeCompleted, time.Second)

	expected := `
# HELP algoviz_runs_finished_total Total runs finished by outcome
# TYPE algoviz_runs_finished_total counter
algoviz_runs_finished_total{lab="graph",outcome="abandoned"} 1
algoviz_runs_finished_total{lab="graph",outcome="completed"} 1
# HELP algoviz_runs_started_total Total runs started
# TYPE algoviz_runs_started_total counter
algoviz_runs_started_total{algorithm="bfs",lab="graph"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"algoviz_runs_started_total", "algoviz_runs_finished_total"))
	n, err := testutil.GatherAndCount(reg, "algoviz_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_Observer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	ctl := run.NewController(run.WithObserver(m.Observer()))

	ctl.Start()
	ctl.Pause()
	ctl.Pause()
	ctl.Resume()
	ctl.Cancel()

	expected := `
# HELP algoviz_controls_total Total run-control transitions by action
# TYPE algoviz_controls_total counter
algoviz_controls_total{action="cancel"} 1
algoviz_controls_total{action="pause"} 1
algoviz_controls_total{action="resume"} 1
algoviz_controls_total{action="start"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "algoviz_controls_total"))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *metrics.Metrics
	m.RunStarted("sort", "bubble")
	m.RunFinished("sort", metrics.OutcomeFailed, 0)

	rec := &viz.Recorder{}
	m.Sink(rec).Emit(viz.Event{Kind: viz.StepCounted})
	assert.Equal(t, 1, len(rec.Events()))
	m.Cue(nil).Swap()
	assert.NotNil(t, m.Observer())
}
