package rng

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"unsafe"
)

// window returns a parent buffer and the offset of an n-byte window inside it
// whose first byte sits skew bytes past an align boundary.
func window(n, align, skew int) ([]byte, int) {
	buf := make([]byte, n+2*align+16)
	off := 0
	for uintptr(unsafe.Pointer(&buf[off]))%uintptr(align) != 0 {
		off++
	}
	return buf, off + skew
}

func TestCounterIncrementsByOne(t *testing.T) {
	var c Counter
	for want := uint32(1); want <= 1000; want++ {
		if got := c.Seed(); got != want {
			t.Fatalf("Seed = %d, want %d", got, want)
		}
	}
	if !Insecure(&c) {
		t.Fatalf("Counter must report itself as a placeholder")
	}
}

func TestCounterWraps(t *testing.T) {
	c := Counter{n: ^uint32(0) - 1}
	if c.Seed() != ^uint32(0) {
		t.Fatalf("expected max value")
	}
	if c.Seed() != 0 {
		t.Fatalf("expected wrap to zero")
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	if _, err := NewGenerator(nil, 4); err != ErrNilSource {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
	for _, w := range []int{0, 3, 5, 16, -4} {
		if _, err := NewGenerator(&Counter{}, w); err != ErrWordSize {
			t.Fatalf("word %d: expected ErrWordSize, got %v", w, err)
		}
	}
}

func TestGenerateBlockWritesExactLength(t *testing.T) {
	const fill = 0x11
	src := SeedFunc(func() uint32 { return 0xA5A5A5A5 })

	for _, w := range []int{1, 2, 4, 8} {
		g, err := NewGenerator(src, w)
		if err != nil {
			t.Fatalf("NewGenerator: %v", err)
		}
		for n := 0; n <= 67; n++ {
			for skew := 0; skew < w; skew++ {
				buf, off := window(n, w, skew)
				for i := range buf {
					buf[i] = fill
				}
				if rc := g.GenerateBlock(buf[off : off+n]); rc != 0 {
					t.Fatalf("GenerateBlock returned %d", rc)
				}
				for i := range buf {
					inside := i >= off && i < off+n
					if inside && buf[i] == fill {
						t.Fatalf("w=%d n=%d skew=%d: byte %d not written", w, n, skew, i-off)
					}
					if !inside && buf[i] != fill {
						t.Fatalf("w=%d n=%d skew=%d: wrote outside window at %d", w, n, skew, i-off)
					}
				}
			}
		}
	}
}

func TestGenerateBlockAlignedTail(t *testing.T) {
	var c Counter
	g, _ := NewGenerator(&c, 4)

	buf, off := window(7, 4, 0)
	out := buf[off : off+7]
	g.GenerateBlock(out)

	want := make([]byte, 7)
	binary.NativeEndian.PutUint32(want[:4], 1)
	want[4], want[5], want[6] = 2, 3, 4
	if !bytes.Equal(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	if next := c.Seed(); next != 5 {
		t.Fatalf("expected 4 seeds consumed, next seed %d", next)
	}
}

func TestGenerateBlockMisalignedHead(t *testing.T) {
	var c Counter
	g, _ := NewGenerator(&c, 4)

	buf, off := window(8, 4, 1)
	out := buf[off : off+8]
	g.GenerateBlock(out)

	want := make([]byte, 8)
	want[0], want[1], want[2] = 1, 2, 3
	binary.NativeEndian.PutUint32(want[3:7], 4)
	want[7] = 5
	if !bytes.Equal(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestGenerateBlockWideWordZeroExtends(t *testing.T) {
	var c Counter
	g, _ := NewGenerator(&c, 8)

	buf, off := window(8, 8, 0)
	out := buf[off : off+8]
	g.GenerateBlock(out)
	if binary.NativeEndian.Uint64(out) != 1 {
		t.Fatalf("expected a single zero-extended seed, got %v", out)
	}
}

func TestGenerateBlockEmpty(t *testing.T) {
	var c Counter
	g, _ := NewGenerator(&c, 4)
	if g.GenerateBlock(nil) != 0 {
		t.Fatalf("expected success")
	}
	if g.GenerateBlock([]byte{}) != 0 {
		t.Fatalf("expected success")
	}
	if c.Seed() != 1 {
		t.Fatalf("empty buffer must not draw seeds")
	}
}

func TestGeneratorReader(t *testing.T) {
	g, _ := NewGenerator(&Counter{}, 4)
	var r io.Reader = g

	b := make([]byte, 33)
	n, err := io.ReadFull(r, b)
	if err != nil || n != len(b) {
		t.Fatalf("ReadFull: n=%d err=%v", n, err)
	}
	if bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("expected non-zero output")
	}
}

func TestEntropy(t *testing.T) {
	var e Entropy
	if Insecure(e) {
		t.Fatalf("Entropy is not a placeholder")
	}
	// 16 zero draws in a row from a working kernel source is not plausible.
	var or uint32
	for i := 0; i < 16; i++ {
		or |= e.Seed()
	}
	if or == 0 {
		t.Fatalf("entropy source returned only zeros")
	}
}

func BenchmarkGenerateBlock(b *testing.B) {
	g, _ := NewGenerator(&Counter{}, 4)
	out := make([]byte, 4096)
	b.SetBytes(int64(len(out)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateBlock(out)
	}
}
