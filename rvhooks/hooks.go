package rvhooks

import (
	"errors"
	"io"
	"log"

	"github.com/TheusHen/rvhooks/rvhooks/clock"
	"github.com/TheusHen/rvhooks/rvhooks/config"
	"github.com/TheusHen/rvhooks/rvhooks/cycle"
	"github.com/TheusHen/rvhooks/rvhooks/heap"
	"github.com/TheusHen/rvhooks/rvhooks/rng"
)

var (
	ErrNoCounter    = errors.New("rvhooks: no cycle counter supplied")
	ErrNoSeedSource = errors.New("rvhooks: no random seed source supplied")
	ErrNoAllocator  = errors.New("rvhooks: allocator override enabled but no allocator supplied")
)

// Options carries the capabilities the integrator injects.
type Options struct {
	Counter cycle.Counter
	Seed    rng.SeedSource
	// Allocator is required when the board enables the allocator override.
	Allocator heap.Allocator
	// Logger receives placeholder warnings. Defaults to log.Default().
	Logger *log.Logger
}

// Hooks is the table of entry points handed to the host library. Entry points
// for features the board leaves disabled are nil.
type Hooks struct {
	Board config.Board

	// Time returns seconds since reset; used for certificate date checks.
	Time func(timer *uint64) uint64
	// LowResTimer returns seconds since reset. TLS only.
	LowResTimer func() uint32
	// CurrentTime returns fractional seconds since reset. Benchmark only.
	CurrentTime func(reset bool) float64

	SeedGen  func() uint32
	GenBlock func(output []byte) int

	// Allocator overrides, present only with XMallocOverride.
	Malloc  func(n int, heap any, typ int) []byte
	Free    func(p []byte, heap any, typ int)
	Realloc func(p []byte, n int, heap any, typ int) []byte

	clock *clock.Clock
	gen   *rng.Generator
}

// New assembles the hook table for board from opts.
func New(board config.Board, opts Options) (*Hooks, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	if opts.Counter == nil {
		return nil, ErrNoCounter
	}
	if opts.Seed == nil {
		return nil, ErrNoSeedSource
	}
	if board.XMallocOverride && opts.Allocator == nil {
		return nil, ErrNoAllocator
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	clk, err := clock.New(opts.Counter, board.FrequencyHz)
	if err != nil {
		return nil, err
	}
	gen, err := rng.NewGenerator(opts.Seed, board.WordSize)
	if err != nil {
		return nil, err
	}

	h := &Hooks{
		Board:    board,
		Time:     clk.Time,
		SeedGen:  gen.Seed,
		GenBlock: gen.GenerateBlock,
		clock:    clk,
		gen:      gen,
	}
	if board.TLS {
		h.LowResTimer = clk.LowResTimer
	}
	if board.Benchmark {
		h.CurrentTime = clk.CurrentTime
	}
	if rng.Insecure(opts.Seed) {
		logger.Printf("rvhooks: WARNING: board %q uses a placeholder seed source; random output is predictable", board.Name)
	}
	if board.XMallocOverride {
		h.Malloc = opts.Allocator.Allocate
		h.Free = opts.Allocator.Free
		h.Realloc = opts.Allocator.Reallocate
		if heap.Placeholder(opts.Allocator) {
			logger.Printf("rvhooks: WARNING: board %q uses a placeholder allocator; every allocation will fail", board.Name)
		}
	}
	return h, nil
}

// Clock returns the clock behind the time entry points.
func (h *Hooks) Clock() *clock.Clock { return h.clock }

// Reader exposes the block generator as an io.Reader for key and nonce
// generation.
func (h *Hooks) Reader() io.Reader { return h.gen }
