package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/lab"
)

// printReport writes the summary of one run as aligned key/value lines.
func printReport(w io.Writer, rep *lab.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "run\t%s\n", rep.ID)
	fmt.Fprintf(tw, "algorithm\t%s\n", rep.Algorithm)
	fmt.Fprintf(tw, "outcome\t%s\n", rep.Outcome)
	fmt.Fprintf(tw, "elapsed\t%s\n", rep.Elapsed.Round(time.Millisecond))

	if rep.Lab == "sort" {
		fmt.Fprintf(tw, "values\t%v\n", rep.Values)
		fmt.Fprintf(tw, "steps\t%d\n", rep.Steps)
		return
	}
	fmt.Fprintf(tw, "order\t%v\n", rep.Order)
	if rep.Depth != nil {
		fmt.Fprintf(tw, "depth\t%v\n", rep.Depth)
	}
	if rep.Dist != nil {
		fmt.Fprintf(tw, "dist\t%s\n", distances(rep.Dist))
		fmt.Fprintf(tw, "path\t%v\n", rep.Path)
	}
}

func distances(dist []int64) string {
	out := make([]string, len(dist))
	for i, d := range dist {
		if d == dijkstra.Unreachable {
			out[i] = "∞"
			continue
		}
		out[i] = fmt.Sprint(d)
	}

	return fmt.Sprint(out)
}
