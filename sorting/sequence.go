package sorting

import "sync"

// Sequence is the comparable sequence a sort works on. Reads are safe from
// any goroutine; writes go through a Helper.
type Sequence struct {
	mu    sync.RWMutex
	elems []Element
}

// NewSequence wraps values; each element's ID is its index in values.
func NewSequence(values []int) *Sequence {
	elems := make([]Element, len(values))
	for i, v := range values {
		elems[i] = Element{Value: v, ID: i}
	}

	return &Sequence{elems: elems}
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.elems)
}

// At returns element i.
func (s *Sequence) At(i int) (Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.elems) {
		return Element{}, false
	}

	return s.elems[i], true
}

// Values returns a copy of the current values.
func (s *Sequence) Values() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, len(s.elems))
	for i, e := range s.elems {
		out[i] = e.Value
	}

	return out
}

// Elements returns a copy of the current elements.
func (s *Sequence) Elements() []Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Element(nil), s.elems...)
}

// Heights scales every value against the current maximum:
// max(v/max*maxHeight, minHeight).
func (s *Sequence) Heights(maxHeight, minHeight float64) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return heights(s.elems, maxHeight, minHeight)
}

func (s *Sequence) inRange(idx ...int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, i := range idx {
		if i < 0 || i >= len(s.elems) {
			return false
		}
	}

	return true
}

func heights(elems []Element, maxHeight, minHeight float64) []float64 {
	top := 0
	for _, e := range elems {
		top = max(top, e.Value)
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		out[i] = minHeight
		if top > 0 {
			out[i] = max(float64(e.Value)/float64(top)*maxHeight, minHeight)
		}
	}

	return out
}
