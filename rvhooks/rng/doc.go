// Package rng supplies the seed source behind the host library's random
// number generator and fills output blocks from it.
//
// Counter is a bring-up placeholder: it returns an increasing sequence and
// provides no randomness at all. Boards with a hardware entropy source should
// wrap it in a SeedFunc; hosted builds can use Entropy.
package rng
