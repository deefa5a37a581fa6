// Package bench times host library operations with the benchmark clock hook,
// the way the library's own benchmark tool does on target.
package bench

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/TheusHen/rvhooks/rvhooks/crypto"
)

// DefaultDuration is how long each case runs, in seconds.
const DefaultDuration = 1.0

// BlockSize is the buffer size used by the throughput cases.
const BlockSize = 1024

var ErrNoClock = errors.New("bench: benchmark clock not available")

// Case is one timed operation.
type Case struct {
	Name string
	// BlockSize is the bytes processed per operation, zero for cases reported
	// in operations per second.
	BlockSize int
	Run       func() error
}

// Result is the outcome of one timed case.
type Result struct {
	Name      string
	Ops       int
	Seconds   float64
	BlockSize int
}

// OpsPerSec returns completed operations per second.
func (r Result) OpsPerSec() float64 {
	if r.Seconds <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Seconds
}

// MBPerSec returns throughput in MiB/s, or zero for operation-count cases.
func (r Result) MBPerSec() float64 {
	if r.Seconds <= 0 || r.BlockSize == 0 {
		return 0
	}
	return float64(r.Ops*r.BlockSize) / r.Seconds / (1 << 20)
}

// String formats r as one report line.
func (r Result) String() string {
	if r.BlockSize > 0 {
		return fmt.Sprintf("%-20s %8d ops %8.3f s %10.3f MiB/s", r.Name, r.Ops, r.Seconds, r.MBPerSec())
	}
	return fmt.Sprintf("%-20s %8d ops %8.3f s %10.3f ops/s", r.Name, r.Ops, r.Seconds, r.OpsPerSec())
}

// Runner repeats each case until Duration seconds have passed on Now.
type Runner struct {
	// Now is the CurrentTime hook.
	Now      func(reset bool) float64
	Duration float64
	// Logger, when set, receives one line per finished case.
	Logger *log.Logger
}

// Run times a single case. The case runs at least once.
func (r *Runner) Run(c Case) (Result, error) {
	if r.Now == nil {
		return Result{}, ErrNoClock
	}
	d := r.Duration
	if d <= 0 {
		d = DefaultDuration
	}

	start := r.Now(true)
	ops := 0
	var elapsed float64
	for {
		if err := c.Run(); err != nil {
			return Result{}, fmt.Errorf("bench: %s: %w", c.Name, err)
		}
		ops++
		elapsed = r.Now(false) - start
		if elapsed >= d {
			break
		}
	}
	res := Result{Name: c.Name, Ops: ops, Seconds: elapsed, BlockSize: c.BlockSize}
	if r.Logger != nil {
		r.Logger.Println(res)
	}
	return res, nil
}

// RunAll times cases in order and stops at the first failure.
func (r *Runner) RunAll(cases []Case) ([]Result, error) {
	out := make([]Result, 0, len(cases))
	for _, c := range cases {
		res, err := r.Run(c)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

// DefaultCases builds the standard suite. genBlock is the GenBlock hook and
// rand its reader form.
func DefaultCases(genBlock func([]byte) int, rand io.Reader) ([]Case, error) {
	key, err := crypto.DeriveKey([]byte("bench"), nil, []byte("chacha20-poly1305"), 32)
	if err != nil {
		return nil, err
	}
	aead, err := crypto.NewAEAD(key, rand)
	if err != nil {
		return nil, err
	}
	peer, err := crypto.GenerateX25519(rand)
	if err != nil {
		return nil, err
	}
	local, err := crypto.GenerateX25519(rand)
	if err != nil {
		return nil, err
	}

	block := make([]byte, BlockSize)
	secret := make([]byte, 32)

	return []Case{
		{
			Name:      "RNG",
			BlockSize: BlockSize,
			Run: func() error {
				if rc := genBlock(block); rc != 0 {
					return fmt.Errorf("GenBlock returned %d", rc)
				}
				return nil
			},
		},
		{
			Name:      "ChaCha20-Poly1305",
			BlockSize: BlockSize,
			Run: func() error {
				_ = aead.Seal(block, nil)
				return nil
			},
		},
		{
			Name: "HKDF-SHA256",
			Run: func() error {
				_, err := crypto.DeriveKey(secret, nil, []byte("bench"), 32)
				return err
			},
		},
		{
			Name: "X25519 key gen",
			Run: func() error {
				_, err := crypto.GenerateX25519(rand)
				return err
			},
		},
		{
			Name: "X25519 agree",
			Run: func() error {
				_, err := crypto.ECDH(local.PrivateKey, peer.PublicKey)
				return err
			},
		},
	}, nil
}
