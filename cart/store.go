// Package cart keeps per-session shopping carts. A cart is a mapping from
// product ID to quantity plus a display snapshot taken at add time. Carts
// live only in memory, keyed by the opaque session ID the caller supplies;
// an unknown session is simply an empty cart.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Snapshot carries the display fields copied from the product when a line
// is first added, so the cart can render without re-reading the catalog.
type Snapshot struct {
	Name  string
	Price decimal.Decimal
	Image string
	Slug  string
}

// Entry is one cart line. Quantity is always >= 1; a line that would reach
// zero is removed instead of stored.
type Entry struct {
	Quantity int             `json:"quantity"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Slug     string          `json:"slug"`
}

type Store struct {
	mu    sync.RWMutex
	carts map[string]map[string]Entry
}

func NewStore() *Store {
	return &Store{carts: make(map[string]map[string]Entry)}
}

// Get returns a copy of the session's cart. Mutating the result does not
// affect the store.
func (s *Store) Get(sessionID string) map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Entry, len(s.carts[sessionID]))
	for id, entry := range s.carts[sessionID] {
		out[id] = entry
	}
	return out
}

// Put upserts a cart line: an existing line gets its quantity incremented,
// a new line stores the snapshot. Quantities below 1 are ignored.
func (s *Store) Put(sessionID, productID string, quantity int, snap Snapshot) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[sessionID]
	if c == nil {
		c = make(map[string]Entry)
		s.carts[sessionID] = c
	}

	if entry, ok := c[productID]; ok {
		entry.Quantity += quantity
		c[productID] = entry
		return
	}
	c[productID] = Entry{
		Quantity: quantity,
		Name:     snap.Name,
		Price:    snap.Price,
		Image:    snap.Image,
		Slug:     snap.Slug,
	}
}

// SetQuantity overwrites a line's quantity. Zero or negative removes the
// line; never stores a non-positive quantity.
func (s *Store) SetQuantity(sessionID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[sessionID]
	if c == nil {
		return
	}
	if quantity <= 0 {
		delete(c, productID)
		return
	}
	entry, ok := c[productID]
	if !ok {
		return
	}
	entry.Quantity = quantity
	c[productID] = entry
}

func (s *Store) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts[sessionID], productID)
}

func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Count returns the summed quantity across the session's lines, used for
// the cart badge.
func (s *Store) Count(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, entry := range s.carts[sessionID] {
		total += entry.Quantity
	}
	return total
}
