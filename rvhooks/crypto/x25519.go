package crypto

import (
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"
)

var ErrInvalidPublicKey = errors.New("crypto: invalid X25519 public key")

// X25519KeyPair is an ephemeral ECDH key pair.
type X25519KeyPair struct {
	PublicKey  [32]byte
	PrivateKey [32]byte
}

// GenerateX25519 draws a private scalar from rand and derives its public key.
func GenerateX25519(rand io.Reader) (X25519KeyPair, error) {
	var kp X25519KeyPair
	if _, err := io.ReadFull(rand, kp.PrivateKey[:]); err != nil {
		return X25519KeyPair{}, err
	}
	// RFC 7748 clamping.
	kp.PrivateKey[0] &= 248
	kp.PrivateKey[31] &= 127
	kp.PrivateKey[31] |= 64

	curve25519.ScalarBaseMult(&kp.PublicKey, &kp.PrivateKey)
	return kp, nil
}

// ECDH returns the raw 32-byte shared secret; feed it to DeriveKey.
func ECDH(privateKey, peerPublicKey [32]byte) ([]byte, error) {
	var zero [32]byte
	if peerPublicKey == zero {
		return nil, ErrInvalidPublicKey
	}
	return curve25519.X25519(privateKey[:], peerPublicKey[:])
}
