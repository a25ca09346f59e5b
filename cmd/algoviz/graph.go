package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/input"
	"github.com/katalvlaran/algoviz/lab"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Run BFS, DFS or Dijkstra on a small undirected graph",
	Long: `Builds a graph from --edge "u v [w]" flags (weight defaults to 1), a --preset
shape, or a random connected graph when neither is given, and runs the chosen
traversal on it.`,
	Example: `  algoviz graph --nodes 3 --edge "0 1 4" --edge "1 2 1" --edge "0 2 10" --algo dijkstra
  algoviz graph --nodes 8 --random --seed 7 --algo bfs --delay 200ms
  algoviz graph --preset grid:4x5 --algo dfs`,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().IntP("nodes", "n", 6, "Number of nodes (1-30)")
	graphCmd.Flags().Int("start", 0, "Start node")
	graphCmd.Flags().StringArrayP("edge", "e", nil, `Edge as "u v [w]"; repeatable`)
	graphCmd.Flags().String("preset", "", "Shape: path:N, cycle:N, star:N, wheel:N, complete:N or grid:RxC")
	graphCmd.Flags().Bool("weighted", false, "Random 1-9 weights for --preset")
	graphCmd.Flags().Bool("random", false, "Generate a random connected graph")
	graphCmd.Flags().Int64("seed", 0, "Seed for --random (0 uses the clock)")
	graphCmd.Flags().StringP("algo", "a", "bfs", "bfs, dfs or dijkstra")
	graphCmd.Flags().Int("dest", -1, "Dijkstra destination (default: last node)")
	graphCmd.Flags().Duration("delay", 0, "Pause per step (default from config)")
}

func runGraph(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	nodes, _ := flags.GetInt("nodes")
	start, _ := flags.GetInt("start")
	edges, _ := flags.GetStringArray("edge")
	preset, _ := flags.GetString("preset")
	weighted, _ := flags.GetBool("weighted")
	random, _ := flags.GetBool("random")
	seed, _ := flags.GetInt64("seed")
	algo, _ := flags.GetString("algo")
	dest, _ := flags.GetInt("dest")

	delay := app.cfg.Graph.Delay
	if flags.Changed("delay") {
		delay, _ = flags.GetDuration("delay")
	}

	opts := append(labOptions(cmd), lab.WithDelay(delay), lab.WithDestination(dest))
	l := lab.NewGraphLab(opts...)

	rng := rand.New(rand.NewSource(seedOrNow(seed)))
	switch {
	case preset != "":
		var wrng *rand.Rand
		if weighted {
			wrng = rng
		}
		in, err := input.Preset(preset, start, wrng)
		if err != nil {
			return err
		}
		if err = l.Build(in); err != nil {
			return err
		}
	case random || len(edges) == 0:
		if err := l.BuildRandom(nodes, start, rng); err != nil {
			return err
		}
	default:
		specs, err := input.ParseEdges(strings.Join(edges, "\n"))
		if err != nil {
			return err
		}
		if err = l.Build(input.GraphInput{Nodes: nodes, Start: start, Edges: specs}); err != nil {
			return err
		}
	}
	g := l.Graph()
	fmt.Fprintf(cmd.OutOrStdout(), "graph: %d nodes, %d edges\n%s\n", g.Len(), g.EdgeCount(), g)

	return drive(cmd.Context(), l, func(ctx context.Context) error {
		rep, err := l.Run(ctx, algo)
		if rep != nil {
			printReport(cmd.OutOrStdout(), rep)
		}
		return err
	})
}

func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}

	return time.Now().UnixNano()
}
