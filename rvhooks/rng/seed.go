package rng

// SeedSource returns one unit of randomness per call.
type SeedSource interface {
	Seed() uint32
}

// SeedFunc adapts a read function, typically a hardware TRNG register, to
// SeedSource.
type SeedFunc func() uint32

func (f SeedFunc) Seed() uint32 { return f() }

// Counter is the placeholder seed source: each call returns the previous
// value plus one, starting at 1 and wrapping at 2^32. It is NOT random and is
// not safe for concurrent use.
type Counter struct {
	n uint32
}

func (c *Counter) Seed() uint32 {
	c.n++
	return c.n
}

// Insecure marks Counter as a placeholder.
func (c *Counter) Insecure() bool { return true }

// Insecure reports whether src declares itself a placeholder.
func Insecure(src SeedSource) bool {
	p, ok := src.(interface{ Insecure() bool })
	return ok && p.Insecure()
}
