//go:build !linux

package cycle

import "time"

var epoch = time.Now()

func monotonicNanos() uint64 {
	return uint64(time.Since(epoch).Nanoseconds())
}
