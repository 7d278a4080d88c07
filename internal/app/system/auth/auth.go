// Package auth issues and verifies the bearer tokens that identify API
// callers, and carries the verified identity through the request context.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong claims, or expiry. Callers never learn which.
var ErrInvalidToken = errors.New("invalid token")

// SessionUser is the verified identity injected into r.Context().
// The role is deliberately absent: tokens outlive role changes, so
// handlers that gate on role re-fetch the user document per request.
type SessionUser struct {
	ID    string
	Email string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the verified caller and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user into the request context, bypassing token
// verification. Only for handler tests.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// claims is the JWT payload: the caller's user ID and email, nothing else.
type claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens. Stateless: there is no
// revocation list, so a token stays valid until expiry even after a
// password change or account deletion.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewIssuer builds an Issuer. ttl <= 0 falls back to one hour.
func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue produces a signed token encoding the user's ID and email.
func (i *Issuer) Issue(userID, email string) (string, error) {
	now := time.Now()
	c := claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// Verify parses and validates a token, returning the identity it carries.
// Any failure — signature, shape, expiry — collapses to ErrInvalidToken.
func (i *Issuer) Verify(token string) (*SessionUser, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid || c.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &SessionUser{ID: c.UserID, Email: c.Email}, nil
}

// RequireAuth is the bearer-token middleware for all non-public routes.
// A missing Authorization header is a 401; a present-but-invalid token is
// a 400 (the original API's contract, preserved for compatibility).
func (i *Issuer) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			writeAuthError(w, http.StatusUnauthorized, "access denied: no token provided")
			return
		}
		u, err := i.Verify(raw)
		if err != nil {
			writeAuthError(w, http.StatusBadRequest, "invalid token")
			return
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// writeAuthError writes the {message} body inline rather than through
// httpx to keep this package free of intra-app dependencies.
func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"message":` + quote(message) + `}`))
}

func quote(s string) string {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b = append(b, '\\', s[i])
		default:
			b = append(b, s[i])
		}
	}
	return string(append(b, '"'))
}
