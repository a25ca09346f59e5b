package hanoi

// Compile unrolls solve(n, from, to, aux) into a flat instruction queue.
// Each call pushes its frame; n == 1 emits a base marker and the move of
// disk 1; otherwise the n-1 tower goes to aux, disk n moves, and the n-1
// tower comes back onto it. Each call ends with a pop.
//
// The queue holds 2^n-1 moves, 2^n-1 push/pop pairs and 2^(n-1) base markers.
// n < 1 yields an empty queue.
func Compile(n int, from, to, aux Peg) []Instruction {
	if n < 1 {
		return nil
	}
	moves := MoveCount(n)
	out := make([]Instruction, 0, 3*moves+(moves+1)/2)

	return solve(out, n, from, to, aux)
}

func solve(out []Instruction, n int, from, to, aux Peg) []Instruction {
	frame := Frame{N: n, From: from, To: to, Status: StatusActive}
	out = append(out, Instruction{Op: Push, Frame: frame})

	if n == 1 {
		base := frame
		base.Status = StatusBaseCase
		out = append(out,
			Instruction{Op: Base, Frame: base},
			Instruction{Op: Move, Disk: 1, From: from, To: to},
		)
	} else {
		out = solve(out, n-1, from, aux, to)
		out = append(out, Instruction{Op: Move, Disk: n, From: from, To: to})
		out = solve(out, n-1, aux, to, from)
	}

	done := frame
	done.Status = StatusCompleted

	return append(out, Instruction{Op: Pop, Frame: done})
}

// MoveCount returns the minimal number of moves for n disks, 2^n - 1.
func MoveCount(n int) int {
	if n < 1 {
		return 0
	}

	return 1<<n - 1
}
