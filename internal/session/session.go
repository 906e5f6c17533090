// Package session holds the authenticated identity for one browser. The
// whole session (upstream bearer token plus user profile) travels in a
// single HS256-signed cookie, so restore is synchronous and a tampered or
// corrupt cookie simply means no session.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
	RoleUser  = "user"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Session struct {
	User  User
	Token string
}

type claims struct {
	User  User   `json:"user"`
	Token string `json:"token"`
	jwtlib.RegisteredClaims
}

type Store struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
}

func NewStore(secret, cookieName string, ttl time.Duration, secure bool) *Store {
	return &Store{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
	}
}

func (s *Store) CookieName() string { return s.cookieName }

// Issue signs the session and sets the cookie. Called once per login.
func (s *Store) Issue(c *gin.Context, sess Session) error {
	now := time.Now()
	cl := claims{
		User:  sess.User,
		Token: sess.Token,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, cl).SignedString(s.secret)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, signed, int(s.ttl.Seconds()), "/", "", s.secure, true)
	return nil
}

// Current restores the session from the request cookie. Any failure,
// whether a missing cookie, bad signature, or expired or malformed token,
// resolves to nil rather than an error.
func (s *Store) Current(c *gin.Context) *Session {
	raw, err := c.Cookie(s.cookieName)
	if err != nil || raw == "" {
		return nil
	}

	sess, err := s.decode(raw)
	if err != nil {
		return nil
	}
	return sess
}

func (s *Store) decode(raw string) (*Session, error) {
	token, err := jwtlib.ParseWithClaims(raw, &claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session cookie")
	}

	cl, ok := token.Claims.(*claims)
	if !ok || cl.Token == "" {
		return nil, errors.New("invalid session claims")
	}

	return &Session{User: cl.User, Token: cl.Token}, nil
}

// Clear drops the cookie. Teardown is local-only: the upstream token is
// simply forgotten.
func (s *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}
