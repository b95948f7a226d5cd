// Package auth holds the session credential and mediates login and
// logout. Two states exist: anonymous (no token) and authenticated
// (token present). The only way in is a successful login; the only way
// out is an explicit logout. Token expiry does not log the session out
// — an expired token simply starts failing server-side.
package auth

import (
	"context"

	"github.com/seashell-books/storefront/internal/domain/models"
	"github.com/seashell-books/storefront/internal/logger"
)

// LoginAPI is the slice of the API gateway the auth store needs.
type LoginAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.JWTToken, error)
}

type Store struct {
	api   LoginAPI
	token *models.JWTToken
}

func New(api LoginAPI) *Store {
	return &Store{api: api}
}

// Login exchanges credentials for a token. On failure the state is
// left unchanged and the error goes back to the caller; there is no
// retry.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	log := logger.Get()
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		log.Error().Err(err).Str("email", creds.Email).Msg("login failed")
		return err
	}
	s.token = &token
	log.Debug().Msg("session authenticated")
	return nil
}

// Logout drops the token unconditionally.
func (s *Store) Logout() {
	s.token = nil
}

// Authenticated reports whether a bearer token is held.
func (s *Store) Authenticated() bool {
	return s.token != nil && s.token.AccessToken != ""
}

// Token returns the raw bearer token, or "" for an anonymous session.
// Shaped to plug straight into the API gateway's token lookup.
func (s *Store) Token() string {
	if s.token == nil {
		return ""
	}
	return s.token.AccessToken
}

// Claims decodes the payload of the held token. Anonymous sessions get
// an empty claim set.
func (s *Store) Claims() (Claims, error) {
	if !s.Authenticated() {
		return Claims{}, nil
	}
	return Decode(s.token.AccessToken)
}
