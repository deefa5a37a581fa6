//go:build !linux

package rng

import (
	"crypto/rand"
	"io"
)

func fillEntropy(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}
