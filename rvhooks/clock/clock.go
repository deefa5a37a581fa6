// Package clock converts cycle-counter readings into the seconds-since-reset
// values the host library asks for.
//
// None of these readings relate to wall-clock time. Anything that checks
// calendar dates against them (certificate validity, for one) is working in
// seconds since boot.
package clock

import (
	"errors"

	"github.com/TheusHen/rvhooks/rvhooks/cycle"
)

// DefaultFrequency is the core clock of the reference board, in Hz.
const DefaultFrequency = 65_000_000

var (
	ErrZeroFrequency = errors.New("clock: frequency must be non-zero")
	ErrNilCounter    = errors.New("clock: nil cycle counter")
)

// Clock derives time from a cycle counter running at a fixed frequency.
type Clock struct {
	counter cycle.Counter
	freq    uint64
}

// New returns a clock over counter ticking at freqHz cycles per second.
func New(counter cycle.Counter, freqHz uint64) (*Clock, error) {
	if counter == nil {
		return nil, ErrNilCounter
	}
	if freqHz == 0 {
		return nil, ErrZeroFrequency
	}
	return &Clock{counter: counter, freq: freqHz}, nil
}

// Frequency returns the cycles-per-second constant.
func (c *Clock) Frequency() uint64 { return c.freq }

// Cycles returns the raw counter reading.
func (c *Clock) Cycles() uint64 { return c.counter.Cycles() }

// Time returns whole seconds since reset. The timer argument is accepted for
// signature compatibility and is never written.
func (c *Clock) Time(timer *uint64) uint64 {
	_ = timer
	return c.counter.Cycles() / c.freq
}

// LowResTimer returns whole seconds since reset, truncated to 32 bits.
func (c *Clock) LowResTimer() uint32 {
	return uint32(c.counter.Cycles() / c.freq)
}

// CurrentTime returns fractional seconds since reset. reset is ignored.
func (c *Clock) CurrentTime(reset bool) float64 {
	_ = reset
	return float64(c.counter.Cycles()) / float64(c.freq)
}
