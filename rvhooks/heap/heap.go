// Package heap defines the memory-management capability the host library calls
// when its allocator is overridden.
package heap

// Allocator mirrors the library's allocate/free/reallocate overrides. The heap
// identifier and type tag are opaque to the allocator; multi-heap or debug
// allocators may use them.
//
// A nil result from Allocate or Reallocate means out of memory. The caller
// reports it through its own error path.
type Allocator interface {
	Allocate(n int, heap any, typ int) []byte
	Free(p []byte, heap any, typ int)
	Reallocate(p []byte, n int, heap any, typ int) []byte
}

// Null is the placeholder allocator: every allocation fails and Free does
// nothing. A library running on it cannot allocate at all.
type Null struct{}

func (Null) Allocate(n int, heap any, typ int) []byte             { return nil }
func (Null) Free(p []byte, heap any, typ int)                     {}
func (Null) Reallocate(p []byte, n int, heap any, typ int) []byte { return nil }

// Placeholder marks Null as non-functional.
func (Null) Placeholder() bool { return true }

// GoHeap serves allocations from the Go heap.
type GoHeap struct{}

// Allocate returns n zeroed bytes, or nil for a negative size.
func (GoHeap) Allocate(n int, heap any, typ int) []byte {
	if n < 0 {
		return nil
	}
	return make([]byte, n)
}

// Free is a no-op; the garbage collector reclaims p once unreferenced.
func (GoHeap) Free(p []byte, heap any, typ int) {}

// Reallocate returns an n-byte block holding the first min(len(p), n) bytes of
// p. A nil p behaves like Allocate; n == 0 releases p and returns nil.
func (h GoHeap) Reallocate(p []byte, n int, heap any, typ int) []byte {
	if n == 0 {
		h.Free(p, heap, typ)
		return nil
	}
	out := h.Allocate(n, heap, typ)
	if out == nil {
		return nil
	}
	copy(out, p)
	return out
}

// Placeholder reports whether a declares itself non-functional.
func Placeholder(a Allocator) bool {
	p, ok := a.(interface{ Placeholder() bool })
	return ok && p.Placeholder()
}
