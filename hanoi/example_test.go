package hanoi_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/hanoi"
)

// ExampleCompile lists the instruction queue for two disks.
func ExampleCompile() {
	for _, in := range hanoi.Compile(2, hanoi.A, hanoi.C, hanoi.B) {
		fmt.Println(in)
	}
	// Output:
	// push hanoi(2, A → C) [active]
	// push hanoi(1, A → B) [active]
	// base hanoi(1, A → B) [base-case]
	// move 1 A→B
	// pop hanoi(1, A → B) [completed]
	// move 2 A→C
	// push hanoi(1, B → C) [active]
	// base hanoi(1, B → C) [base-case]
	// move 1 B→C
	// pop hanoi(1, B → C) [completed]
	// pop hanoi(2, A → C) [completed]
}

// ExamplePlayer_Step drives the solve by hand.
func ExamplePlayer_Step() {
	p, _ := hanoi.NewPlayer(2)
	for p.Step() {
	}
	s := p.Snapshot()
	fmt.Println(s.Moves, s.TotalMoves, s.Towers)
	// Output:
	// 3 3 [[] [] [2 1]]
}
