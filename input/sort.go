package input

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// SortInput is an array to sort and the speed to sort it at.
type SortInput struct {
	Values []int   `validate:"min=1,max=20,dive,gte=0,lte=1000"`
	Speed  float64 `validate:"gte=0"`
}

// Validate checks the array size, every value and the speed.
func (in SortInput) Validate() error { return check(in) }

// ParseValues reads exactly size whitespace-separated integers.
func ParseValues(text string, size int) ([]int, error) {
	if size < MinSortSize || size > MaxSortSize {
		return nil, fmt.Errorf("%w: array size must be between %d and %d", ErrInvalid, MinSortSize, MaxSortSize)
	}
	fields := strings.Fields(text)
	if len(fields) != size {
		return nil, fmt.Errorf("%w: enter exactly %d numbers, got %d", ErrInvalid, size, len(fields))
	}
	out := make([]int, size)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalid, f)
		}
		out[i] = v
	}
	if err := (SortInput{Values: out}).Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// RandomValues draws size values in 1..100.
func RandomValues(size int, rng *rand.Rand) ([]int, error) {
	if size < MinSortSize || size > MaxSortSize {
		return nil, fmt.Errorf("%w: array size must be between %d and %d", ErrInvalid, MinSortSize, MaxSortSize)
	}
	out := make([]int, size)
	for i := range out {
		out[i] = rng.Intn(RandomValueMax) + 1
	}

	return out, nil
}

// Speed returns s, or 1 when s is not positive.
func Speed(s float64) float64 {
	if s <= 0 {
		return 1
	}

	return s
}
