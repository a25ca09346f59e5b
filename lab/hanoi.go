package lab

import (
	"github.com/katalvlaran/algoviz/hanoi"
)

// NewHanoi returns a Tower of Hanoi player with n disks wired to the lab
// settings: sink, logger, metrics and controller options. WithDelay sets
// the pause after each move.
func NewHanoi(n int, opts ...Option) (*hanoi.Player, error) {
	s := newSettings(opts)

	return hanoi.NewPlayer(n,
		hanoi.WithController(s.controller()),
		hanoi.WithSink(s.metrics.Sink(s.sink)),
		hanoi.WithLogger(s.logger),
		hanoi.WithDelay(s.delayOr(hanoi.DefaultDelay)),
	)
}
