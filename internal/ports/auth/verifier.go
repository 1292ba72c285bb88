package auth

import "context"

// AuthVerifier verifica un token y devuelve el principal o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}
