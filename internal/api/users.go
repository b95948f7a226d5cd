package api

import (
	"context"
	"fmt"

	"github.com/seashell-books/storefront/internal/domain/models"
)

// Signup registers a new account. The payload is validated locally
// before anything goes on the wire so form mistakes don't cost a
// round trip.
func (c *Client) Signup(ctx context.Context, signup models.UserSignup) (models.User, error) {
	if err := c.valid.Struct(signup); err != nil {
		return models.User{}, fmt.Errorf("signup: %w", err)
	}
	var user models.User
	resp, err := c.req().SetContext(ctx).SetBody(signup).SetResult(&user).Post("/users/signup")
	if err := finish(resp, err); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login exchanges credentials for a bearer token. The endpoint speaks
// the OAuth2 password form, so the email travels as "username".
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.JWTToken, error) {
	if err := c.valid.Struct(creds); err != nil {
		return models.JWTToken{}, fmt.Errorf("login: %w", err)
	}
	var token models.JWTToken
	resp, err := c.req().SetContext(ctx).
		SetFormData(map[string]string{
			"username": creds.Email,
			"password": creds.Password,
		}).
		SetResult(&token).
		Post("/users/login")
	if err := finish(resp, err); err != nil {
		return models.JWTToken{}, err
	}
	return token, nil
}

// Me returns the profile of the currently authenticated user.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	resp, err := c.req().SetContext(ctx).SetResult(&user).Get("/users/me")
	if err := finish(resp, err); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// MyOrders returns the order history of the currently authenticated
// user, newest first as served.
func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	resp, err := c.req().SetContext(ctx).SetResult(&orders).Get("/users/me/orders")
	if err := finish(resp, err); err != nil {
		return nil, err
	}
	return orders, nil
}
