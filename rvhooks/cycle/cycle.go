// Package cycle reads the RISC-V cycle counter, or stands in for it on hosted
// builds and in tests.
//
// Firmware built with TinyGo uses MCycle, which reads mcycleh/mcycle on RV32
// and mcycle on RV64. Hosted builds use NewHost; tests use Manual.
package cycle

// Counter reads the processor cycle counter: cycles elapsed since reset.
type Counter interface {
	Cycles() uint64
}

// CounterFunc adapts a plain read function to Counter.
// On 64-bit targets the whole counter fits one CSR read.
type CounterFunc func() uint64

// Cycles calls f.
func (f CounterFunc) Cycles() uint64 { return f() }

// Split reads a 64-bit counter exposed as two 32-bit halves, as mcycleh/mcycle
// are on RV32.
//
// The high half is read before and after the low half; if it changed, the low
// half rolled over between the reads and the pair is read again.
type Split struct {
	Hi func() uint32
	Lo func() uint32
}

// Cycles returns a consistent 64-bit snapshot of the two halves.
func (s Split) Cycles() uint64 {
	for {
		hi := s.Hi()
		lo := s.Lo()
		if hi == s.Hi() {
			return uint64(hi)<<32 | uint64(lo)
		}
	}
}
