// Package api is the single point of HTTP configuration for the
// storefront. It wraps one resty client around the remote bookstore
// API: every operation goes through it, and the current bearer token
// is attached (or omitted) in exactly one place.
package api

import (
	"github.com/go-playground/validator"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/seashell-books/storefront/internal/config"
)

// TokenFunc yields the current bearer token, or "" when the session is
// anonymous. The client never stores the token itself.
type TokenFunc func() string

type Client struct {
	http  *resty.Client
	valid *validator.Validate
}

func New(cfg *config.Config, token TokenFunc) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	httpc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	httpc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.New().String())
		if t := token(); t != "" {
			req.SetHeader("Authorization", "Bearer "+t)
		}
		return nil
	})
	return &Client{
		http:  httpc,
		valid: validator.New(),
	}
}

func (c *Client) req() *resty.Request {
	return c.http.R()
}

// finish maps a completed exchange to the caller-visible error:
// transport failures pass through unmodified, non-2xx responses decode
// into *APIError.
func finish(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		return newAPIError(resp)
	}
	return nil
}
