package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"pet-adoption/internal/ports/auth"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims que firma el proveedor de identidad (HS256, AUTH_MODE=jwt).
type Claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	IsStaff  bool   `json:"is_staff,omitempty"`
	jwtlib.RegisteredClaims
}

// Verifier valida tokens HS256 con un secreto compartido.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Principal, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return v.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}), jwtlib.WithExpirationRequired())
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return auth.Principal{}, ErrInvalidToken
	}

	p := auth.Principal{
		UserID:   strings.TrimSpace(claims.Subject),
		Username: claims.Username,
		Email:    claims.Email,
		IsStaff:  claims.IsStaff,
	}
	if !p.Authenticated() {
		return auth.Principal{}, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}
	return p, nil
}

// Sign firma claims con el mismo secreto (dev y tests).
func (v *Verifier) Sign(c Claims) (string, error) {
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(v.secret)
}
