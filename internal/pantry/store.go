// Package pantry holds the in-memory pantry state for the lifetime of the
// process. Nothing is persisted across restarts.
package pantry

import (
	"sync"

	"github.com/mpaterson/souschef/internal/model"
)

// Observer is called synchronously after every mutation completes. Observers
// re-read Items for the current state; no diff is provided.
type Observer func()

// Store is the authoritative ordered collection of pantry items. It is an
// injectable value, not package state, so tests get a fresh store each time.
// The mutex makes mutations safe under concurrent HTTP handlers; a read
// issued after a mutation returns always reflects that mutation.
type Store struct {
	mu        sync.RWMutex
	items     []model.PantryItem
	observers []Observer
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// AddItem appends the item to the end of the collection. Adding the same
// barcode twice produces two independent entries: quantity is tracked per
// scan event, not per product.
func (s *Store) AddItem(item model.PantryItem) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.notify()
}

// RemoveItem removes the item with the given id. Unknown ids are a no-op,
// not an error.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// UpdateQuantity replaces the quantity of the matching item. Unknown ids are
// a no-op. The value is not validated; negative quantities flow through
// unchecked and callers own any range enforcement.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Items returns a snapshot of the collection in insertion order.
func (s *Store) Items() []model.PantryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.PantryItem, len(s.items))
	copy(out, s.items)
	return out
}

// IngredientNames projects the name off every item, preserving order and
// duplicates. This is the exact sequence the query builder consumes.
func (s *Store) IngredientNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.items))
	for i, item := range s.items {
		names[i] = item.Name
	}
	return names
}

// Len reports the current number of items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Subscribe registers an observer. Registration order is notification order.
func (s *Store) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// notify runs outside the items lock so observers can call Items.
func (s *Store) notify() {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, obs := range observers {
		obs()
	}
}
