//go:build tinygo.riscv64

package cycle

import "device/riscv"

// MCycle reads the machine cycle counter.
var MCycle Counter = CounterFunc(func() uint64 {
	return uint64(riscv.AsmFull("csrr {}, mcycle", nil))
})
