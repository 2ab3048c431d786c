// Package token issues and verifies the signed session tokens carrying
// the identity claims {id, email, role, name}. Verification is
// stateless: there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired   = errors.New("token expired")
	ErrMalformed = errors.New("token malformed")
)

// Claims são os campos de identidade embutidos no token de sessão.
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Issue(c Claims) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"id":    c.ID,
		"email": c.Email,
		"role":  c.Role,
		"name":  c.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded claims.
// Failures collapse into ErrExpired or ErrMalformed.
func (s *Service) Verify(raw string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	claims := jwt.MapClaims{}
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	if !tok.Valid {
		return nil, ErrMalformed
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrMalformed
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)

	return &Claims{
		ID:    uint(id),
		Email: email,
		Role:  role,
		Name:  name,
	}, nil
}
