package auth

import (
	"strconv"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the decoded, unverified JWT payload. The client never
// holds the signing key, so this is a read of what the server put in
// the token, not proof of anything.
type Claims map[string]any

// userIDClaims is the fallback chain for locating a user identifier,
// in priority order.
var userIDClaims = []string{"user_id", "sub", "id", "uid", "userId"} //nolint:gochecknoglobals // fixed chain

var (
	firstNameClaims = []string{"first_name", "firstName", "given_name", "givenName"} //nolint:gochecknoglobals // fixed chain
	lastNameClaims  = []string{"last_name", "lastName", "family_name", "familyName"} //nolint:gochecknoglobals // fixed chain
)

// Decode parses the payload segment of a JWT without verifying the
// signature.
func Decode(tokenStr string) (Claims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, nil
	}
	return Claims(mapClaims), nil
}

// scopes returns the claim maps to probe: the top level, and the
// nested "user" object the login endpoint nests identity under.
func (c Claims) scopes() []map[string]any {
	out := []map[string]any{c}
	if user, ok := c["user"].(map[string]any); ok {
		out = append(out, user)
	}
	return out
}

// UserID resolves a user identifier through the fallback chain. The
// second return is false when no recognized claim carries a usable id.
func (c Claims) UserID() (int, bool) {
	for _, name := range userIDClaims {
		for _, scope := range c.scopes() {
			if id, ok := toInt(scope[name]); ok {
				return id, true
			}
		}
	}
	return 0, false
}

// FirstName returns the best-effort first name claim, or "".
func (c Claims) FirstName() string {
	return c.firstString(firstNameClaims)
}

// LastName returns the best-effort last name claim, or "".
func (c Claims) LastName() string {
	return c.firstString(lastNameClaims)
}

func (c Claims) firstString(names []string) string {
	for _, name := range names {
		for _, scope := range c.scopes() {
			if s, ok := scope[name].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func toInt(v any) (int, bool) {
	switch id := v.(type) {
	case float64:
		return int(id), true
	case int:
		return id, true
	case string:
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
