package rng

import (
	"encoding/binary"
	"fmt"
)

// Entropy draws seeds from the host kernel's random number generator.
type Entropy struct{}

// Seed panics if the kernel source fails: the hook has no error channel and
// silently returning a fixed value would be worse.
func (Entropy) Seed() uint32 {
	var b [4]byte
	if err := fillEntropy(b[:]); err != nil {
		panic(fmt.Errorf("rng: entropy source failed: %w", err))
	}
	return binary.NativeEndian.Uint32(b[:])
}
