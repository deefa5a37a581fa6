package cycle

import (
	"testing"
	"time"
)

// halves replays scripted reads of the high and low counter halves.
type halves struct {
	hi, lo   []uint32
	hiN, loN int
}

func (h *halves) readHi() uint32 {
	v := h.hi[h.hiN]
	h.hiN++
	return v
}

func (h *halves) readLo() uint32 {
	v := h.lo[h.loN]
	h.loN++
	return v
}

func TestSplitStable(t *testing.T) {
	h := &halves{hi: []uint32{3, 3}, lo: []uint32{42}}
	got := Split{Hi: h.readHi, Lo: h.readLo}.Cycles()
	if got != 3<<32|42 {
		t.Fatalf("Cycles = %#x", got)
	}
	if h.hiN != 2 || h.loN != 1 {
		t.Fatalf("unexpected reads: hi=%d lo=%d", h.hiN, h.loN)
	}
}

func TestSplitRetriesOnRollover(t *testing.T) {
	// The low half wraps between the first high read and the low read:
	// hi=0 with lo=5 would be a torn value far behind the real counter.
	h := &halves{hi: []uint32{0, 1, 1, 1}, lo: []uint32{5, 7}}
	got := Split{Hi: h.readHi, Lo: h.readLo}.Cycles()
	if got != 1<<32|7 {
		t.Fatalf("Cycles = %#x, want %#x", got, uint64(1)<<32|7)
	}
	if h.hiN != 4 || h.loN != 2 {
		t.Fatalf("expected one retry: hi=%d lo=%d", h.hiN, h.loN)
	}
}

func TestSplitNeverGoesBackward(t *testing.T) {
	// Walk a counter across the 32-bit boundary, sampling it after every
	// half-register read so each rollover interleaving is exercised.
	var c uint64 = 1<<32 - 4
	step := func() { c++ }
	s := Split{
		Hi: func() uint32 { v := uint32(c >> 32); step(); return v },
		Lo: func() uint32 { v := uint32(c); step(); return v },
	}
	var last uint64
	for i := 0; i < 32; i++ {
		got := s.Cycles()
		if got < last {
			t.Fatalf("counter went backward: %#x after %#x", got, last)
		}
		last = got
	}
}

func TestCounterFunc(t *testing.T) {
	var f Counter = CounterFunc(func() uint64 { return 99 })
	if f.Cycles() != 99 {
		t.Fatalf("CounterFunc mismatch")
	}
}

func TestManual(t *testing.T) {
	var m Manual
	m.Set(10)
	m.Advance(5)
	if m.Cycles() != 15 {
		t.Fatalf("Manual = %d", m.Cycles())
	}
}

func TestHostMonotonic(t *testing.T) {
	h := NewHost(65_000_000)
	if h.Frequency() != 65_000_000 {
		t.Fatalf("Frequency mismatch")
	}
	a := h.Cycles()
	time.Sleep(2 * time.Millisecond)
	b := h.Cycles()
	if b <= a {
		t.Fatalf("host counter did not advance: %d then %d", a, b)
	}
	// 2ms at 65MHz is 130000 cycles; allow generous scheduling slack.
	if b-a < 100_000 {
		t.Fatalf("host counter advanced too little: %d", b-a)
	}
}
