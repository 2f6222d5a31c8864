// Package reviews keeps vendor reviews in process memory, keyed by the
// vendor's provider id. Append-only; order is insertion order.
package reviews

import (
	"sync"
	"time"
)

// Review is one visitor review of a vendor.
type Review struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Date   string `json:"date"`
}

// Store is an in-memory review store safe for concurrent use. Appends
// are atomic per vendor key; reads return copies so callers can never
// mutate stored state.
type Store struct {
	mu      sync.RWMutex
	byVendor map[string][]Review
}

// NewStore creates an empty review store.
func NewStore() *Store {
	return &Store{byVendor: make(map[string][]Review)}
}

// List returns the vendor's reviews in insertion order, or an empty
// slice when none are recorded.
func (s *Store) List(vendorID string) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byVendor[vendorID]
	out := make([]Review, len(stored))
	copy(out, stored)
	return out
}

// Add appends a review to the vendor's list, creating the list on first
// write, and returns the stored review. A missing date is stamped with
// the current UTC time. The store does not police rating bounds or
// text; that belongs to the caller.
func (s *Store) Add(vendorID string, review Review) Review {
	if review.Date == "" {
		review.Date = time.Now().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byVendor[vendorID] = append(s.byVendor[vendorID], review)
	return review
}
