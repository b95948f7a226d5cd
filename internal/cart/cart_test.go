package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seashell-books/storefront/internal/domain/models"
)

func book(id int, title, price string) models.Book {
	return models.Book{ID: id, Title: title, Price: decimal.RequireFromString(price)}
}

func TestStore_Add(t *testing.T) {
	t.Run("same book twice increments quantity", func(t *testing.T) {
		s := New()
		dune := book(3, "Dune", "12.99")

		s.Add(dune)
		s.Add(dune)

		items := s.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 2, s.Count())
	})

	t.Run("distinct books keep insertion order", func(t *testing.T) {
		s := New()
		s.Add(book(2, "Solaris", "9.50"))
		s.Add(book(1, "Dune", "12.99"))

		items := s.Items()
		assert.Len(t, items, 2)
		assert.Equal(t, "Solaris", items[0].Book.Title)
		assert.Equal(t, "Dune", items[1].Book.Title)
	})
}

func TestStore_Clear(t *testing.T) {
	s := New()
	s.Add(book(1, "Dune", "12.99"))
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Count())

	// clearing an empty cart is a no-op
	s.Clear()
	assert.Zero(t, s.Len())
}

func TestStore_Subtotal(t *testing.T) {
	s := New()
	assert.True(t, s.Subtotal().IsZero())

	a := book(1, "A", "10.00")
	s.Add(a)
	assert.Equal(t, "10.00", s.Subtotal().StringFixed(2))

	s.Add(a)
	assert.Equal(t, "20.00", s.Subtotal().StringFixed(2))

	s.Add(book(2, "B", "0.99"))
	assert.Equal(t, "20.99", s.Subtotal().StringFixed(2))
}

func TestStore_Elements(t *testing.T) {
	s := New()
	s.Add(book(7, "A", "1.00"))
	s.Add(book(9, "B", "2.00"))
	s.Add(book(7, "A", "1.00"))

	assert.Equal(t, []models.OrderElement{
		{BookID: 7, Quantity: 2},
		{BookID: 9, Quantity: 1},
	}, s.Elements())
}

func TestStore_ItemsIsACopy(t *testing.T) {
	s := New()
	s.Add(book(1, "Dune", "12.99"))

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items()[0].Quantity)
}
