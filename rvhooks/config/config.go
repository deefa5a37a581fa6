// Package config loads the board profile: the build-time knobs of the host
// library port, kept in a YAML file next to the firmware.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultFrequency = 65_000_000
	DefaultWordSize  = 4
)

var (
	ErrZeroFrequency = errors.New("config: cpu_freq_hz must be non-zero")
	ErrWordSize      = errors.New("config: rand_word_size must be 1, 2, 4 or 8")
)

// Board describes one target.
type Board struct {
	// Name is informational.
	Name string `yaml:"name,omitempty"`
	// FrequencyHz is the cycle counter rate in cycles per second.
	FrequencyHz uint64 `yaml:"cpu_freq_hz"`
	// WordSize is the width of the library's native random word.
	WordSize int `yaml:"rand_word_size"`
	// TLS exposes the low-resolution timer.
	TLS bool `yaml:"tls"`
	// Benchmark exposes the benchmark clock.
	Benchmark bool `yaml:"benchmark"`
	// XMallocOverride exposes the allocator overrides.
	XMallocOverride bool `yaml:"xmalloc_override"`
}

// Default returns the reference board profile: 65 MHz core, 4-byte random
// word, TLS and benchmark hooks enabled, library allocator left alone.
func Default() Board {
	return Board{
		Name:        "reference",
		FrequencyHz: DefaultFrequency,
		WordSize:    DefaultWordSize,
		TLS:         true,
		Benchmark:   true,
	}
}

// Validate checks the frequency and random word size.
func (b Board) Validate() error {
	if b.FrequencyHz == 0 {
		return ErrZeroFrequency
	}
	switch b.WordSize {
	case 1, 2, 4, 8:
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrWordSize, b.WordSize)
	}
}

// Parse decodes a YAML profile. Keys absent from data keep their Default
// values; unknown keys are rejected.
func Parse(data []byte) (Board, error) {
	b := Default()
	if err := yaml.UnmarshalStrict(data, &b); err != nil {
		return Board{}, fmt.Errorf("config: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Load reads and parses the profile at path.
func Load(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Marshal renders b as YAML.
func Marshal(b Board) ([]byte, error) {
	return yaml.Marshal(b)
}
