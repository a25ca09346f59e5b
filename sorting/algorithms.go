package sorting

// Bubble runs adjacent-pair passes; the last cell of each pass is flagged done.
func Bubble(h *Helper) {
	n := h.Len()
	for i := 0; i < n-1; i++ {
		if h.Stopped() {
			return
		}
		for j := 0; j < n-i-1; j++ {
			if h.Stopped() {
				return
			}
			h.Mark(j)
			h.Mark(j + 1)
			if h.Compare(j, j+1) {
				h.Swap(j, j+1)
			}
			h.Unmark(j)
			h.Unmark(j + 1)
		}
		h.Done(n - i - 1)
	}
	if n > 0 && !h.Stopped() {
		h.Done(0)
	}
}

// Selection keeps the tentative minimum tagged special while the cursor scans.
func Selection(h *Helper) {
	n := h.Len()
	for i := 0; i < n; i++ {
		if h.Stopped() {
			return
		}
		minIdx := i
		for j := i + 1; j < n; j++ {
			if h.Stopped() {
				return
			}
			h.MarkSpecial(minIdx)
			h.Mark(j)
			if h.Compare(minIdx, j) {
				h.Unmark(minIdx)
				minIdx = j
			}
			h.Unmark(j)
		}
		if minIdx != i {
			h.Swap(minIdx, i)
		}
		h.Unmark(minIdx)
		h.Done(i)
	}
}

// Insertion shifts each element left with swaps while its predecessor is greater.
func Insertion(h *Helper) {
	n := h.Len()
	for i := 0; i < n-1; i++ {
		if h.Stopped() {
			return
		}
		for j := i; j >= 0 && h.Compare(j, j+1); j-- {
			if h.Stopped() {
				return
			}
			h.Mark(j)
			h.Mark(j + 1)
			h.Swap(j, j+1)
			h.Unmark(j)
			h.Unmark(j + 1)
		}
	}
	markAllDone(h)
}

// Merge is a top-down merge sort. Each merge builds the interleaved run in a
// buffer, taking from the left half on ties, then commits it with Write.
func Merge(h *Helper) {
	mergeDivide(h, 0, h.Len()-1)
	markAllDone(h)
}

func mergeDivide(h *Helper, lo, hi int) {
	if h.Stopped() || lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	mergeDivide(h, lo, mid)
	mergeDivide(h, mid+1, hi)
	merge(h, lo, mid, hi)
}

func merge(h *Helper, lo, mid, hi int) {
	if h.Stopped() {
		return
	}
	buf := make([]Element, 0, hi-lo+1)
	i, j := lo, mid+1
	for i <= mid && j <= hi {
		if !h.Tick() {
			return
		}
		a, _ := h.At(i)
		b, _ := h.At(j)
		if a.Value <= b.Value {
			buf = append(buf, a)
			i++
		} else {
			buf = append(buf, b)
			j++
		}
	}
	for ; i <= mid; i++ {
		a, _ := h.At(i)
		buf = append(buf, a)
	}
	for ; j <= hi; j++ {
		b, _ := h.At(j)
		buf = append(buf, b)
	}

	for k := lo; k <= hi; k++ {
		h.Mark(k)
	}
	for k, e := range buf {
		if !h.Write(lo+k, e) {
			break
		}
	}
	for k := lo; k <= hi; k++ {
		h.Unmark(k)
	}
}

// Quick is quicksort with Lomuto partitioning around the last element.
func Quick(h *Helper) {
	quickDivide(h, 0, h.Len()-1)
	markAllDone(h)
}

func quickDivide(h *Helper, lo, hi int) {
	if h.Stopped() || lo >= hi {
		return
	}
	p := partition(h, lo, hi)
	quickDivide(h, lo, p-1)
	quickDivide(h, p+1, hi)
}

func partition(h *Helper, lo, hi int) int {
	if h.Stopped() {
		return lo
	}
	pivot := h.Value(hi)
	store := lo
	h.MarkSpecial(hi)
	for i := lo; i < hi; i++ {
		if h.Stopped() {
			return store
		}
		h.Mark(i)
		h.Tick()
		if h.Value(i) < pivot {
			h.Swap(i, store)
			store++
		}
		h.Unmark(i)
	}
	h.Swap(store, hi)
	h.Unmark(hi)

	return store
}

func markAllDone(h *Helper) {
	for i := 0; i < h.Len(); i++ {
		if h.Stopped() {
			return
		}
		h.Done(i)
	}
}
