//go:build linux

package cycle

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func monotonicNanos() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic(fmt.Errorf("cycle: clock_gettime: %w", err))
	}
	return uint64(ts.Nano())
}
