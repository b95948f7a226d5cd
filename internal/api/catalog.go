package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/seashell-books/storefront/internal/domain/models"
)

// Books returns every book in the store.
func (c *Client) Books(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	resp, err := c.req().SetContext(ctx).SetResult(&books).Get("/books")
	if err := finish(resp, err); err != nil {
		return nil, err
	}
	return books, nil
}

// Book returns a single book by id.
func (c *Client) Book(ctx context.Context, id int) (models.Book, error) {
	var book models.Book
	resp, err := c.req().SetContext(ctx).SetResult(&book).Get(fmt.Sprintf("/books/%d", id))
	if err := finish(resp, err); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

// Bestsellers returns the top sellers for a calendar month. Zero year
// or month means the server picks the current one.
func (c *Client) Bestsellers(ctx context.Context, year, month int) ([]models.BestSeller, error) {
	req := c.req().SetContext(ctx)
	if year > 0 {
		req.SetQueryParam("year", strconv.Itoa(year))
	}
	if month > 0 {
		req.SetQueryParam("month", strconv.Itoa(month))
	}
	var sellers []models.BestSeller
	resp, err := req.SetResult(&sellers).Get("/books/bestsellers")
	if err := finish(resp, err); err != nil {
		return nil, err
	}
	return sellers, nil
}

// NewArrivals returns the most recently published books.
func (c *Client) NewArrivals(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	resp, err := c.req().SetContext(ctx).SetResult(&books).Get("/books/new-arrivals")
	if err := finish(resp, err); err != nil {
		return nil, err
	}
	return books, nil
}
