package input

import "time"

// HanoiInput is a disk count and the auto-play delay.
type HanoiInput struct {
	Disks int           `validate:"min=1,max=10"`
	Delay time.Duration `validate:"gte=0"`
}

// Validate checks the disk count and delay.
func (in HanoiInput) Validate() error { return check(in) }
