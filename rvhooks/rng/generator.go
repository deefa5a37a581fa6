package rng

import (
	"encoding/binary"
	"errors"
	"unsafe"
)

// DefaultWordSize is the width of the library's native random word.
const DefaultWordSize = 4

var (
	ErrWordSize  = errors.New("rng: word size must be 1, 2, 4 or 8")
	ErrNilSource = errors.New("rng: nil seed source")
)

// Generator fills buffers from a seed source, one native word at a time where
// the buffer allows it.
type Generator struct {
	src  SeedSource
	word int
}

// NewGenerator returns a generator writing wordSize-byte words.
func NewGenerator(src SeedSource, wordSize int) (*Generator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	switch wordSize {
	case 1, 2, 4, 8:
	default:
		return nil, ErrWordSize
	}
	return &Generator{src: src, word: wordSize}, nil
}

// WordSize returns the native word width in bytes.
func (g *Generator) WordSize() int { return g.word }

// Seed draws one value from the underlying source.
func (g *Generator) Seed() uint32 { return g.src.Seed() }

// GenerateBlock fills out and returns 0. A position that is misaligned for the
// word size, or too close to the end for a whole word, gets a single byte.
// Every other position gets a whole word.
func (g *Generator) GenerateBlock(out []byte) int {
	w := g.word
	i := 0
	for i < len(out) {
		if i+w > len(out) || uintptr(unsafe.Pointer(&out[i]))%uintptr(w) != 0 {
			out[i] = byte(g.src.Seed())
			i++
			continue
		}
		g.putWord(out[i:i+w], g.src.Seed())
		i += w
	}
	return 0
}

func (g *Generator) putWord(b []byte, v uint32) {
	switch g.word {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(b, uint16(v))
	case 4:
		binary.NativeEndian.PutUint32(b, v)
	case 8:
		binary.NativeEndian.PutUint64(b, uint64(v))
	}
}

// Read implements io.Reader over GenerateBlock. It never fails.
func (g *Generator) Read(p []byte) (int, error) {
	g.GenerateBlock(p)
	return len(p), nil
}
