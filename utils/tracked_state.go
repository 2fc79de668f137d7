package utils

import (
	"time"
)

// TrackedState keeps the most recent value of a feed together with whether it
// changed during the current cycle.
type TrackedState[T any] struct {
	Value       T
	Valid       bool
	Updated     bool
	UpdatedTime time.Time
}

func (t *TrackedState[T]) Update(val T) {
	t.Value = val
	t.Valid = true
	t.Updated = true
	t.UpdatedTime = time.Now()
}

// EndCycle clears the updated flag, the value is kept.
func (t *TrackedState[T]) EndCycle() {
	t.Updated = false
}
