//go:build tinygo.riscv32

package cycle

import "device/riscv"

// MCycle reads the machine cycle counter through mcycleh/mcycle.
var MCycle Counter = Split{
	Hi: func() uint32 { return uint32(riscv.AsmFull("csrr {}, mcycleh", nil)) },
	Lo: func() uint32 { return uint32(riscv.AsmFull("csrr {}, mcycle", nil)) },
}
