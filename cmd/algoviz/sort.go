package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/input"
	"github.com/katalvlaran/algoviz/lab"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/viz"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort up to 20 values with an instrumented comparison sort",
	Example: `  algoviz sort --values "5 3 8 1" --algo bubble
  algoviz sort --size 12 --algo quick --speed 4 --bell`,
	RunE: runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)

	keys := make([]string, 0, 5)
	for _, a := range sorting.Algorithms() {
		keys = append(keys, a.Key)
	}
	sortCmd.Flags().String("values", "", "Whitespace-separated values (0-1000); random when empty")
	sortCmd.Flags().Int("size", 10, "Number of random values (1-20)")
	sortCmd.Flags().Int64("seed", 0, "Seed for random values (0 uses the clock)")
	sortCmd.Flags().StringP("algo", "a", "bubble", strings.Join(keys, ", "))
	sortCmd.Flags().Float64("speed", 0, "Speed factor; delay is max(10ms, 400ms/speed) (default from config)")
	sortCmd.Flags().Bool("bell", false, "Ring the terminal bell on every swap")
}

func runSort(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	text, _ := flags.GetString("values")
	size, _ := flags.GetInt("size")
	seed, _ := flags.GetInt64("seed")
	algo, _ := flags.GetString("algo")
	bell, _ := flags.GetBool("bell")

	speed := app.cfg.Sort.Speed
	if flags.Changed("speed") {
		speed, _ = flags.GetFloat64("speed")
	}

	opts := append(labOptions(cmd), lab.WithSpeed(input.Speed(speed)), lab.WithMaxHeight(app.cfg.Sort.MaxHeight))
	if bell {
		opts = append(opts, lab.WithCue(viz.Bell{W: cmd.OutOrStdout()}))
	}
	l := lab.NewSortLab(opts...)

	if text == "" {
		if err := l.LoadRandom(size, rand.New(rand.NewSource(seedOrNow(seed)))); err != nil {
			return err
		}
	} else {
		values, err := input.ParseValues(text, len(strings.Fields(text)))
		if err != nil {
			return err
		}
		if err = l.Load(input.SortInput{Values: values}); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "values: %v\n", l.Values())

	return drive(cmd.Context(), l, func(ctx context.Context) error {
		rep, err := l.Run(ctx, algo)
		if rep != nil {
			printReport(cmd.OutOrStdout(), rep)
		}
		return err
	})
}
