// Package cart holds the user's pending selection of books before
// checkout. The store lives and dies with the session: nothing is ever
// persisted, and all access happens from the session goroutine.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/seashell-books/storefront/internal/domain/models"
)

type Store struct {
	items []models.CartItem
}

func New() *Store {
	return &Store{}
}

// Add puts one copy of the book in the cart. A book that is already
// present gets its quantity bumped instead of a duplicate line.
func (s *Store) Add(book models.Book) {
	for i := range s.items {
		if s.items[i].Book.ID == book.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, models.CartItem{Book: book, Quantity: 1})
}

// Clear empties the cart. Clearing an empty cart is a no-op.
func (s *Store) Clear() {
	s.items = nil
}

// Items returns the cart lines in insertion order. The slice is a
// copy; mutating it does not touch the cart.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of distinct lines in the cart.
func (s *Store) Len() int {
	return len(s.items)
}

// Count is the total number of copies across all lines.
func (s *Store) Count() int {
	var n int
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

// Subtotal is the sum over lines of price times quantity.
func (s *Store) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Book.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Elements converts the cart into the order submission payload, in
// cart order.
func (s *Store) Elements() []models.OrderElement {
	elems := make([]models.OrderElement, 0, len(s.items))
	for _, item := range s.items {
		elems = append(elems, models.OrderElement{
			BookID:   item.Book.ID,
			Quantity: item.Quantity,
		})
	}
	return elems
}
