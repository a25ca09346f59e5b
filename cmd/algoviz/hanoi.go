package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/hanoi"
	"github.com/katalvlaran/algoviz/input"
	"github.com/katalvlaran/algoviz/lab"
)

var hanoiCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Solve the Tower of Hanoi from peg A to peg C",
	Long: `Compiles the recursive solution into an instruction queue and replays it,
showing the call stack as it grows and shrinks. With --step nothing plays on its
own: type s and Enter to advance one instruction.`,
	Example: `  algoviz hanoi --disks 4 --delay 300ms
  algoviz hanoi --disks 3 --step`,
	RunE: runHanoi,
}

func init() {
	rootCmd.AddCommand(hanoiCmd)

	hanoiCmd.Flags().IntP("disks", "d", 0, "Number of disks (1-10, default from config)")
	hanoiCmd.Flags().Duration("delay", 0, "Pause after each move (default from config)")
	hanoiCmd.Flags().Bool("step", false, "Manual stepping instead of auto-play")
}

func runHanoi(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	step, _ := flags.GetBool("step")
	if step && !isTerminal(os.Stdin) {
		return errors.New("--step needs an interactive terminal")
	}

	in := input.HanoiInput{Disks: app.cfg.Hanoi.Disks, Delay: app.cfg.Hanoi.Delay}
	if flags.Changed("disks") {
		in.Disks, _ = flags.GetInt("disks")
	}
	if flags.Changed("delay") {
		in.Delay, _ = flags.GetDuration("delay")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	p, err := lab.NewHanoi(in.Disks, append(labOptions(cmd), lab.WithDelay(in.Delay))...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "hanoi: %d disks, %d moves\n", in.Disks, hanoi.MoveCount(in.Disks))

	rc := &hanoiRemote{p: p, ctx: cmd.Context(), manual: step}
	err = drive(cmd.Context(), rc, func(ctx context.Context) error {
		if !step {
			p.Start(ctx)
		}
		waitPlayer(ctx, p, step)
		return nil
	})
	st := p.Snapshot()
	fmt.Fprintf(out, "moves: %d/%d  towers: %v\n", st.Moves, st.TotalMoves, st.Towers)

	return err
}

// waitPlayer blocks until the queue is exhausted or ctx ends. Outside manual
// mode a cancelled run ends the wait too; a paused one does not.
func waitPlayer(ctx context.Context, p *hanoi.Player, manual bool) {
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		st := p.Snapshot()
		if st.Done() || (!manual && !st.Running) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

// hanoiRemote adapts a Player to the keyboard controls.
type hanoiRemote struct {
	p      *hanoi.Player
	ctx    context.Context
	manual bool
}

func (r *hanoiRemote) context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}

	return r.ctx
}

func (r *hanoiRemote) Pause() bool  { return r.p.Pause() }
func (r *hanoiRemote) Resume() bool { return r.p.Resume(r.context()) }
func (r *hanoiRemote) Step() bool   { return r.p.Step() }
func (r *hanoiRemote) Manual() bool { return r.manual }

func (r *hanoiRemote) Toggle() bool {
	if r.p.Controller().Paused() {
		r.p.Resume(r.context())
		return false
	}

	return r.p.Pause()
}

// Cancel stops auto-play; the towers keep their current state.
func (r *hanoiRemote) Cancel() {
	r.p.Controller().Cancel()
}
