package cycle

// Manual is a counter driven by hand. It is useful for tests and for targets
// where cycles are accounted in software.
type Manual struct {
	n uint64
}

// Cycles returns the current value.
func (m *Manual) Cycles() uint64 { return m.n }

// Set moves the counter to n.
func (m *Manual) Set(n uint64) { m.n = n }

// Advance adds d cycles.
func (m *Manual) Advance(d uint64) { m.n += d }
