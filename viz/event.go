package viz

import "fmt"

// Kind enumerates the presentation events the engines emit.
type Kind int

const (
	// RunReset clears the visible state at the start of a run.
	RunReset Kind = iota
	// HeaderUpdated carries the algorithm name and complexity labels.
	HeaderUpdated

	// NodeVisited: Node entered the trace.
	NodeVisited
	// NodeSettled: Node finished its pacing interval.
	NodeSettled
	// EdgeHighlighted: edge From-To discovered.
	EdgeHighlighted
	// PathNodeGlow: Node lies on the reconstructed shortest path.
	PathNodeGlow
	// PathEdgeGlow: edge From-To lies on the reconstructed shortest path.
	PathEdgeGlow

	// CellMarked: Index is the scan cursor.
	CellMarked
	// CellUnmarked: Index tag cleared.
	CellUnmarked
	// CellSpecial: Index is a pivot or tentative minimum.
	CellSpecial
	// CellDone: Index reached its final position.
	CellDone
	// CellSwapped: Index and Other exchanged; Heights holds every bar.
	CellSwapped
	// CellWritten: Value assigned at Index; Height is its bar.
	CellWritten
	// StepCounted: the step counter moved to Steps.
	StepCounted

	// FramePushed: Frame entered the call stack.
	FramePushed
	// FrameUpdated: top frame changed status.
	FrameUpdated
	// FramePopped: top frame left the call stack.
	FramePopped
	// DiskMoved: Disk went from FromPeg to ToPeg; Moves is the move counter.
	DiskMoved
)

var kindNames = [...]string{
	RunReset:        "run_reset",
	HeaderUpdated:   "header_updated",
	NodeVisited:     "node_visited",
	NodeSettled:     "node_settled",
	EdgeHighlighted: "edge_highlighted",
	PathNodeGlow:    "path_node_glow",
	PathEdgeGlow:    "path_edge_glow",
	CellMarked:      "cell_marked",
	CellUnmarked:    "cell_unmarked",
	CellSpecial:     "cell_special",
	CellDone:        "cell_done",
	CellSwapped:     "cell_swapped",
	CellWritten:     "cell_written",
	StepCounted:     "step_counted",
	FramePushed:     "frame_pushed",
	FrameUpdated:    "frame_updated",
	FramePopped:     "frame_popped",
	DiskMoved:       "disk_moved",
}

// String returns the snake_case name used in logs and metric labels.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Header describes the algorithm of the current run.
type Header struct {
	Algorithm string
	Time      string
	Space     string
}

// Event is one visible state change. Only the fields relevant to Kind are set.
type Event struct {
	Kind Kind

	// graph events
	Node     int
	From, To int

	// sequence events
	Index, Other int
	Value        int
	Height       float64
	Heights      []float64
	Steps        int

	// call-stack and tower events
	Frame   string
	Status  string
	Depth   int
	Disk    int
	FromPeg string
	ToPeg   string
	Moves   int

	Header Header
}

// String renders a compact one-line description of the event.
func (e Event) String() string {
	switch e.Kind {
	case HeaderUpdated:
		return fmt.Sprintf("%s %s time=%s space=%s", e.Kind, e.Header.Algorithm, e.Header.Time, e.Header.Space)
	case NodeVisited, NodeSettled, PathNodeGlow:
		return fmt.Sprintf("%s node=%d", e.Kind, e.Node)
	case EdgeHighlighted, PathEdgeGlow:
		return fmt.Sprintf("%s %d-%d", e.Kind, e.From, e.To)
	case CellMarked, CellUnmarked, CellSpecial, CellDone:
		return fmt.Sprintf("%s i=%d", e.Kind, e.Index)
	case CellSwapped:
		return fmt.Sprintf("%s i=%d j=%d", e.Kind, e.Index, e.Other)
	case CellWritten:
		return fmt.Sprintf("%s i=%d value=%d", e.Kind, e.Index, e.Value)
	case StepCounted:
		return fmt.Sprintf("%s steps=%d", e.Kind, e.Steps)
	case FramePushed, FrameUpdated, FramePopped:
		return fmt.Sprintf("%s %s [%s] depth=%d", e.Kind, e.Frame, e.Status, e.Depth)
	case DiskMoved:
		return fmt.Sprintf("%s disk=%d %s->%s moves=%d", e.Kind, e.Disk, e.FromPeg, e.ToPeg, e.Moves)
	default:
		return e.Kind.String()
	}
}
