package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Store keeps live carts in memory keyed by cart id. Carts are session-local
// and single-writer, so a plain mutex over a map is enough; a cart is gone
// for good once Destroy runs (submission or abandonment).
type Store struct {
	mu      sync.Mutex
	carts   map[string]*Cart
	taxRate decimal.Decimal
}

func NewStore(taxRate decimal.Decimal) *Store {
	return &Store{
		carts:   make(map[string]*Cart),
		taxRate: taxRate,
	}
}

// Get returns the cart for the id, creating an empty one on first use.
func (s *Store) Get(id string, clientID int) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[id]; ok {
		return c
	}

	c := New(id, clientID, s.taxRate)
	s.carts[id] = c
	return c
}

// Find returns the cart for the id if it exists.
func (s *Store) Find(id string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	return c, ok
}

// Destroy drops the cart. Called on submission and on explicit clear.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)
}
