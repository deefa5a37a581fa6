// Package crypto wraps the host library primitives that consume platform
// randomness: ChaCha20-Poly1305 sealing, X25519 key agreement and HKDF-SHA256.
//
// Every constructor that needs fresh bytes takes an io.Reader, normally the
// block generator from the hook table.
package crypto
