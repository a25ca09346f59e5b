package viz

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// bar glyphs from lowest to highest, used to sketch Heights on one line.
var bars = []rune("▁▂▃▄▅▆▇█")

// TextSink renders events as coloured terminal lines.
//
// Cosmetic cell tags (marked, unmarked, special) are noisy at terminal speed
// and are only printed when Verbose is set.
type TextSink struct {
	Verbose bool

	mu  sync.Mutex
	w   io.Writer
	out *termenv.Output
}

// NewTextSink writes to w. When color is false the ASCII profile is forced.
func NewTextSink(w io.Writer, color bool) *TextSink {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &TextSink{w: w, out: termenv.NewOutput(w, opts...)}
}

// Emit prints e.
func (s *TextSink) Emit(e Event) {
	line, ok := s.render(e)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}

func (s *TextSink) paint(text, hex string) string {
	return s.out.String(text).Foreground(s.out.Color(hex)).String()
}

func (s *TextSink) render(e Event) (string, bool) {
	switch e.Kind {
	case RunReset:
		return s.paint("── reset ──", "#6b7280"), true
	case HeaderUpdated:
		title := s.out.String(e.Header.Algorithm).Bold().Foreground(s.out.Color("#818cf8")).String()
		return fmt.Sprintf("%s  time %s  space %s", title, e.Header.Time, e.Header.Space), true
	case NodeVisited:
		return s.paint(fmt.Sprintf("visit   %2d", e.Node), "#facc15"), true
	case NodeSettled:
		return s.paint(fmt.Sprintf("settled %2d", e.Node), "#22c55e"), true
	case EdgeHighlighted:
		return s.paint(fmt.Sprintf("edge    %d─%d", e.From, e.To), "#38bdf8"), true
	case PathNodeGlow:
		return s.paint(fmt.Sprintf("path    %2d", e.Node), "#f472b6"), true
	case PathEdgeGlow:
		return s.paint(fmt.Sprintf("path    %d═%d", e.From, e.To), "#f472b6"), true
	case CellMarked, CellUnmarked, CellSpecial:
		if !s.Verbose {
			return "", false
		}
		return s.paint(e.String(), "#6b7280"), true
	case CellDone:
		return s.paint(fmt.Sprintf("done    [%d]", e.Index), "#22c55e"), true
	case CellSwapped:
		return fmt.Sprintf("%s %s", s.paint(fmt.Sprintf("swap    [%d]<->[%d]", e.Index, e.Other), "#fb7185"), sketch(e.Heights)), true
	case CellWritten:
		return s.paint(fmt.Sprintf("write   [%d]=%d", e.Index, e.Value), "#c084fc"), true
	case StepCounted:
		return "", false
	case FramePushed, FrameUpdated, FramePopped:
		indent := strings.Repeat("  ", max(e.Depth-1, 0))
		return s.paint(fmt.Sprintf("%s%s %s", indent, e.Frame, e.Status), "#a78bfa"), true
	case DiskMoved:
		return s.paint(fmt.Sprintf("move #%d disk %d %s → %s", e.Moves, e.Disk, e.FromPeg, e.ToPeg), "#fbbf24"), true
	default:
		return e.String(), true
	}
}

// sketch maps heights onto block glyphs relative to the tallest bar.
func sketch(heights []float64) string {
	var top float64
	for _, h := range heights {
		top = max(top, h)
	}
	if top <= 0 {
		return ""
	}
	var sb strings.Builder
	for _, h := range heights {
		i := int(h / top * float64(len(bars)-1))
		sb.WriteRune(bars[i])
	}

	return sb.String()
}

// Bell is a Cue that rings the terminal bell on w.
type Bell struct {
	W io.Writer
}

// Swap writes BEL.
func (b Bell) Swap() {
	if b.W != nil {
		_, _ = io.WriteString(b.W, "\a")
	}
}
