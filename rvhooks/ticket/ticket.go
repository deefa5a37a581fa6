// Package ticket caches session-resumption tickets for the host library.
// Ticket lifetimes are measured with the low-resolution timer hook, so they
// count seconds since processor reset.
package ticket

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/TheusHen/rvhooks/rvhooks/crypto"
)

var (
	ErrTicketExpired  = errors.New("ticket: expired")
	ErrTicketInvalid  = errors.New("ticket: invalid")
	ErrTicketNotFound = errors.New("ticket: not found")
	ErrNoTimer        = errors.New("ticket: low-resolution timer not available")
)

const (
	KeySize = 32
	// DefaultLifetime is the resumption window in seconds.
	DefaultLifetime = 500

	plainSize = 32 + 4 + 4 + 32
)

// Ticket is resumable session state.
type Ticket struct {
	ID         [16]byte
	IssuedAt   uint32 // seconds since reset
	ExpiresAt  uint32
	Subject    [32]byte // peer or session identifier chosen by the caller
	SessionKey [32]byte
}

// Store issues and validates tickets. The seed source behind rand is not
// synchronised, so every read of it happens under mu.
type Store struct {
	mu       sync.RWMutex
	tickets  map[[16]byte]*Ticket
	aead     *crypto.AEAD // one sealing state so nonces never repeat
	now      func() uint32
	rand     io.Reader
	lifetime uint32
}

// NewStore creates a store timed by now (the LowResTimer hook) and drawing
// ticket IDs, the sealing key and the nonce prefix from rand.
func NewStore(now func() uint32, rand io.Reader, lifetime uint32) (*Store, error) {
	if now == nil {
		return nil, ErrNoTimer
	}
	if lifetime == 0 {
		lifetime = DefaultLifetime
	}
	ts := &Store{
		tickets:  make(map[[16]byte]*Ticket),
		now:      now,
		rand:     rand,
		lifetime: lifetime,
	}
	var key [KeySize]byte
	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return nil, err
	}
	aead, err := crypto.NewAEAD(key[:], rand)
	if err != nil {
		return nil, err
	}
	ts.aead = aead
	return ts, nil
}

// Issue creates and caches a ticket for subject.
func (ts *Store) Issue(subject, sessionKey [32]byte) (*Ticket, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	now := ts.now()
	t := &Ticket{
		IssuedAt:   now,
		ExpiresAt:  expiry(now, ts.lifetime),
		Subject:    subject,
		SessionKey: sessionKey,
	}
	if _, err := io.ReadFull(ts.rand, t.ID[:]); err != nil {
		return nil, err
	}
	ts.tickets[t.ID] = t
	return t, nil
}

// expiry saturates at the largest timer value instead of wrapping.
func expiry(now, lifetime uint32) uint32 {
	if lifetime > math.MaxUint32-now {
		return math.MaxUint32
	}
	return now + lifetime
}

func (ts *Store) expired(t *Ticket) bool {
	return ts.now() > t.ExpiresAt
}

// Lookup returns a cached, unexpired ticket.
func (ts *Store) Lookup(id [16]byte) (*Ticket, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	t, ok := ts.tickets[id]
	if !ok {
		return nil, ErrTicketNotFound
	}
	if ts.expired(t) {
		return nil, ErrTicketExpired
	}
	return t, nil
}

// Revoke drops a ticket from the cache.
func (ts *Store) Revoke(id [16]byte) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	delete(ts.tickets, id)
}

// Cleanup drops expired tickets and returns how many were removed.
func (ts *Store) Cleanup() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	removed := 0
	for id, t := range ts.tickets {
		if ts.expired(t) {
			delete(ts.tickets, id)
			removed++
		}
	}
	return removed
}

// Encode seals a ticket for transmission.
// Format: ticketID (16) || nonce (12) || sealed state || tag (16)
func (ts *Store) Encode(t *Ticket) ([]byte, error) {
	plain := make([]byte, plainSize)
	copy(plain[0:32], t.Subject[:])
	binary.BigEndian.PutUint32(plain[32:36], t.IssuedAt)
	binary.BigEndian.PutUint32(plain[36:40], t.ExpiresAt)
	copy(plain[40:72], t.SessionKey[:])

	sealed := ts.aead.Seal(plain, t.ID[:])

	out := make([]byte, 16+len(sealed))
	copy(out[:16], t.ID[:])
	copy(out[16:], sealed)
	return out, nil
}

// Decode opens a ticket produced by Encode and checks its expiry.
func (ts *Store) Decode(data []byte) (*Ticket, error) {
	if len(data) < 16+12+16+plainSize {
		return nil, ErrTicketInvalid
	}

	var id [16]byte
	copy(id[:], data[:16])

	plain, err := ts.aead.Open(data[16:], id[:])
	if err != nil || len(plain) != plainSize {
		return nil, ErrTicketInvalid
	}

	t := &Ticket{ID: id}
	copy(t.Subject[:], plain[0:32])
	t.IssuedAt = binary.BigEndian.Uint32(plain[32:36])
	t.ExpiresAt = binary.BigEndian.Uint32(plain[36:40])
	copy(t.SessionKey[:], plain[40:72])

	if ts.expired(t) {
		return nil, ErrTicketExpired
	}
	return t, nil
}

// Count returns the number of cached tickets.
func (ts *Store) Count() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.tickets)
}
