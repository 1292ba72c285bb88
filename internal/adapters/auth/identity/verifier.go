package identity

import (
	"context"
	"fmt"

	"pet-adoption/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier contra el proveedor de identidad (AUTH_MODE=remote).
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Principal, error) {
	if v == nil || v.client == nil {
		return auth.Principal{}, ErrNotConfigured
	}
	p, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("identity verify failed: %w", err)
	}
	return p, nil
}
