// Package rvhooks provides the platform hooks a cryptographic library needs on a
// bare-metal RISC-V target: a monotonic clock derived from the cycle counter, a
// random seed source with a block generator, and optional memory-management
// overrides.
//
// Hooks are assembled from a board profile (see package config) and the
// capabilities the integrator injects. Placeholder capabilities exist for
// bring-up, but they must be chosen explicitly and are reported when used.
package rvhooks
