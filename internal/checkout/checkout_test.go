package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seashell-books/storefront/internal/auth"
	"github.com/seashell-books/storefront/internal/cart"
	"github.com/seashell-books/storefront/internal/checkout"
	"github.com/seashell-books/storefront/internal/domain/models"
)

type placerMock struct {
	mock.Mock
}

func (m *placerMock) CreateOrder(ctx context.Context, userID int, items []models.OrderElement) (models.Order, error) {
	args := m.Called(ctx, userID, items)
	return args.Get(0).(models.Order), args.Error(1)
}

// loginStub hands the auth store a canned token so checkout tests can
// reach the authenticated state without a network.
type loginStub struct {
	token models.JWTToken
}

func (s loginStub) Login(_ context.Context, _ models.Credentials) (models.JWTToken, error) {
	return s.token, nil
}

func mintToken(t *testing.T, claims jwt.MapClaims) models.JWTToken {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return models.JWTToken{AccessToken: raw, Type: "bearer"}
}

func authedStore(t *testing.T, claims jwt.MapClaims) *auth.Store {
	t.Helper()
	store := auth.New(loginStub{token: mintToken(t, claims)})
	require.NoError(t, store.Login(context.Background(), models.Credentials{
		Email:    "fotis@example.com",
		Password: "password123",
	}))
	return store
}

func cartWithDune(t *testing.T) *cart.Store {
	t.Helper()
	c := cart.New()
	c.Add(models.Book{ID: 3, Title: "Dune", Price: decimal.RequireFromString("12.99")})
	c.Add(models.Book{ID: 3, Title: "Dune", Price: decimal.RequireFromString("12.99")})
	c.Add(models.Book{ID: 5, Title: "Solaris", Price: decimal.RequireFromString("9.50")})
	return c
}

func TestFlow_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart submits nothing", func(t *testing.T) {
		placer := &placerMock{}
		flow := checkout.New(cart.New(), authedStore(t, jwt.MapClaims{"user_id": 7}), placer)

		_, err := flow.Run(ctx)
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
		placer.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("login gate fires before the empty cart refusal", func(t *testing.T) {
		placer := &placerMock{}
		flow := checkout.New(cart.New(), auth.New(loginStub{}), placer)

		_, err := flow.Run(ctx)
		assert.ErrorIs(t, err, checkout.ErrNotAuthenticated)
		placer.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("anonymous session is redirected, nothing submitted", func(t *testing.T) {
		placer := &placerMock{}
		c := cartWithDune(t)
		flow := checkout.New(c, auth.New(loginStub{}), placer)

		_, err := flow.Run(ctx)
		assert.ErrorIs(t, err, checkout.ErrNotAuthenticated)
		placer.AssertNotCalled(t, "CreateOrder")
		assert.Equal(t, 3, c.Count(), "cart must survive the refusal")
	})

	t.Run("token without a user id claim aborts", func(t *testing.T) {
		placer := &placerMock{}
		c := cartWithDune(t)
		store := authedStore(t, jwt.MapClaims{"email": "fotis@example.com"})
		flow := checkout.New(c, store, placer)

		_, err := flow.Run(ctx)
		assert.ErrorIs(t, err, checkout.ErrNoUserID)
		placer.AssertNotCalled(t, "CreateOrder")
		assert.Equal(t, 3, c.Count())
	})

	t.Run("success clears the cart", func(t *testing.T) {
		placer := &placerMock{}
		c := cartWithDune(t)
		store := authedStore(t, jwt.MapClaims{
			"user": map[string]any{"user_id": 7},
		})
		flow := checkout.New(c, store, placer)

		want := models.Order{ID: 31, Status: "pending"}
		placer.On("CreateOrder", ctx, 7, []models.OrderElement{
			{BookID: 3, Quantity: 2},
			{BookID: 5, Quantity: 1},
		}).Return(want, nil)

		order, err := flow.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, order)
		assert.Zero(t, c.Len(), "cart is cleared only after the server accepts")
		placer.AssertExpectations(t)
	})

	t.Run("server failure leaves the cart untouched", func(t *testing.T) {
		placer := &placerMock{}
		c := cartWithDune(t)
		flow := checkout.New(c, authedStore(t, jwt.MapClaims{"user_id": 7}), placer)

		placer.On("CreateOrder", mock.Anything, 7, mock.Anything).
			Return(models.Order{}, errors.New("out of stock"))

		_, err := flow.Run(ctx)
		require.Error(t, err)
		assert.Equal(t, 3, c.Count(), "a failed submission must not clear the cart")

		// retry after the failure goes through
		placer.ExpectedCalls = nil
		placer.On("CreateOrder", mock.Anything, 7, mock.Anything).
			Return(models.Order{ID: 32}, nil)
		order, err := flow.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 32, order.ID)
		assert.Zero(t, c.Len())
	})
}
