package cereal

import (
	"time"

	"golang.org/x/sys/unix"
)

var start = time.Now()

// GetTime returns CLOCK_MONOTONIC in nanoseconds, the time base shared by all
// processes on the bus.
func GetTime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return uint64(time.Since(start).Nanoseconds())
	}
	return uint64(ts.Nano())
}
