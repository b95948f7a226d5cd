// Package checkout turns cart and auth state into a server-side
// order.
package checkout

import (
	"context"
	"errors"

	"github.com/seashell-books/storefront/internal/auth"
	"github.com/seashell-books/storefront/internal/cart"
	"github.com/seashell-books/storefront/internal/domain/models"
	"github.com/seashell-books/storefront/internal/logger"
)

var (
	// ErrNotAuthenticated gates checkout on login; the caller should
	// send the user to the login view.
	ErrNotAuthenticated = errors.New("checkout requires login")
	// ErrNoUserID means the token carries none of the recognized
	// user-id claims; nothing was submitted.
	ErrNoUserID = errors.New("no user id claim in token")
	// ErrEmptyCart refuses a submission with no lines in it.
	ErrEmptyCart = errors.New("cart is empty")
)

// OrderPlacer is the slice of the API gateway checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, userID int, items []models.OrderElement) (models.Order, error)
}

type Flow struct {
	cart *cart.Store
	auth *auth.Store
	api  OrderPlacer
}

func New(cartStore *cart.Store, authStore *auth.Store, api OrderPlacer) *Flow {
	return &Flow{cart: cartStore, auth: authStore, api: api}
}

// Run submits the cart as an order. The login gate comes first, then
// the empty-cart refusal. The cart is cleared only after the server
// accepts; every failure path leaves it untouched so the user can
// retry.
func (f *Flow) Run(ctx context.Context) (models.Order, error) {
	log := logger.Get()
	if !f.auth.Authenticated() {
		return models.Order{}, ErrNotAuthenticated
	}
	if f.cart.Len() == 0 {
		return models.Order{}, ErrEmptyCart
	}
	claims, err := f.auth.Claims()
	if err != nil {
		log.Error().Err(err).Msg("decode token claims failed")
		return models.Order{}, ErrNoUserID
	}
	uid, ok := claims.UserID()
	if !ok {
		log.Error().Msg("token has no recognized user id claim")
		return models.Order{}, ErrNoUserID
	}
	order, err := f.api.CreateOrder(ctx, uid, f.cart.Elements())
	if err != nil {
		log.Error().Err(err).Int("user_id", uid).Msg("order submission failed")
		return models.Order{}, err
	}
	f.cart.Clear()
	log.Info().Int("order_id", order.ID).Msg("order placed")
	return order, nil
}
