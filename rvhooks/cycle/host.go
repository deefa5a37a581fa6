package cycle

import "math/bits"

const nanosPerSecond = 1_000_000_000

// Host emulates a cycle counter on a hosted build by scaling the operating
// system's monotonic clock to a fixed core frequency. The counter reads zero
// at construction, which stands in for processor reset.
type Host struct {
	freq uint64
	base uint64
}

// NewHost returns a host counter ticking at freqHz.
func NewHost(freqHz uint64) *Host {
	return &Host{freq: freqHz, base: monotonicNanos()}
}

// Cycles returns the emulated cycles since construction.
func (h *Host) Cycles() uint64 {
	ns := monotonicNanos() - h.base
	hi, lo := bits.Mul64(ns, h.freq)
	q, _ := bits.Div64(hi, lo, nanosPerSecond)
	return q
}

// Frequency returns the emulated core frequency in Hz.
func (h *Host) Frequency() uint64 { return h.freq }
