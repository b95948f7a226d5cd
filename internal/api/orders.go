package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seashell-books/storefront/internal/domain/models"
)

// orderEnvelope tolerates the shapes the order endpoints have shipped
// over time: line items under "items" or "books", each either a
// wrapped {book: {...}, quantity} pair or a flattened book record
// carrying its own quantity.
type orderEnvelope struct {
	models.Order
	RawItems json.RawMessage `json:"items"`
	RawBooks json.RawMessage `json:"books"`
}

func (env *orderEnvelope) order() (models.Order, error) {
	raw := env.RawItems
	if len(raw) == 0 {
		raw = env.RawBooks
	}
	items, err := normalizeItems(raw)
	if err != nil {
		return models.Order{}, err
	}
	out := env.Order
	out.Items = items
	return out, nil
}

func normalizeItems(raw json.RawMessage) ([]models.OrderItem, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	items := make([]models.OrderItem, 0, len(entries))
	for _, entry := range entries {
		var wrapped struct {
			Book     *models.Book `json:"book"`
			Quantity int          `json:"quantity"`
		}
		if err := json.Unmarshal(entry, &wrapped); err == nil && wrapped.Book != nil {
			items = append(items, models.OrderItem{
				Book:     *wrapped.Book,
				Quantity: defaultQty(wrapped.Quantity),
			})
			continue
		}
		var flat struct {
			models.Book
			Quantity int `json:"quantity"`
			Qty      int `json:"qty"`
		}
		if err := json.Unmarshal(entry, &flat); err != nil {
			return nil, fmt.Errorf("order items: %w", err)
		}
		qty := flat.Quantity
		if qty == 0 {
			qty = flat.Qty
		}
		items = append(items, models.OrderItem{
			Book:     flat.Book,
			Quantity: defaultQty(qty),
		})
	}
	return items, nil
}

func defaultQty(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// CreateOrder submits an order for the given user. Stock checks and
// pricing are entirely the server's business.
func (c *Client) CreateOrder(ctx context.Context, userID int, items []models.OrderElement) (models.Order, error) {
	var env orderEnvelope
	resp, err := c.req().SetContext(ctx).
		SetBody(map[string]any{"items": items}).
		SetResult(&env).
		Post(fmt.Sprintf("/orders/%d", userID))
	if err := finish(resp, err); err != nil {
		return models.Order{}, err
	}
	return env.order()
}

// Order returns a single order with its normalized line items.
func (c *Client) Order(ctx context.Context, id int) (models.Order, error) {
	var env orderEnvelope
	resp, err := c.req().SetContext(ctx).SetResult(&env).Get(fmt.Sprintf("/orders/%d", id))
	if err := finish(resp, err); err != nil {
		return models.Order{}, err
	}
	return env.order()
}

// CancelOrder asks the server to cancel an order. The updated order is
// returned so the caller can render the new status.
func (c *Client) CancelOrder(ctx context.Context, id int) (models.Order, error) {
	var env orderEnvelope
	resp, err := c.req().SetContext(ctx).SetResult(&env).Patch(fmt.Sprintf("/orders/%d/cancel", id))
	if err := finish(resp, err); err != nil {
		return models.Order{}, err
	}
	return env.order()
}
