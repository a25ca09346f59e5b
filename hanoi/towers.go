package hanoi

import "fmt"

// Towers holds three stacks of disk sizes, bottom first.
type Towers struct {
	pegs [3][]int
}

// NewTowers stacks disks n..1 on peg A.
func NewTowers(n int) Towers {
	var t Towers
	t.pegs[0] = make([]int, 0, n)
	for d := n; d >= 1; d-- {
		t.pegs[0] = append(t.pegs[0], d)
	}

	return t
}

// Stack returns a copy of peg p, bottom first.
func (t *Towers) Stack(p Peg) []int {
	if !p.valid() {
		return nil
	}

	return append([]int(nil), t.pegs[p.index()]...)
}

// Move pops the top disk of from and pushes it on to.
func (t *Towers) Move(from, to Peg) (int, error) {
	if !from.valid() || !to.valid() || from == to {
		return 0, fmt.Errorf("%w: %s→%s", ErrIllegalMove, from, to)
	}
	src := t.pegs[from.index()]
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: peg %s is empty", ErrIllegalMove, from)
	}
	disk := src[len(src)-1]
	dst := t.pegs[to.index()]
	if len(dst) > 0 && dst[len(dst)-1] < disk {
		return 0, fmt.Errorf("%w: disk %d onto %d", ErrIllegalMove, disk, dst[len(dst)-1])
	}
	t.pegs[from.index()] = src[:len(src)-1]
	t.pegs[to.index()] = append(dst, disk)

	return disk, nil
}

func (t *Towers) snapshot() [3][]int {
	var out [3][]int
	for i, s := range t.pegs {
		out[i] = append([]int(nil), s...)
	}

	return out
}
