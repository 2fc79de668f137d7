package utils

import (
	"time"

	m "pfeifer.dev/colprev/math"
)

// UpdateTracker measures the interval between successive updates.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = u.LastTime
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.UpdateAt(time.Now())
}

func (u *UpdateTracker) UpdateAt(t time.Time) {
	u.LastTime = u.Time
	u.Time = t
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}

// Period is the averaged update interval.
func (u *UpdateTracker) Period() time.Duration {
	return time.Duration(u.DiffMA.Estimate * float64(time.Second))
}
