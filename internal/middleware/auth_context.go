package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption/internal/ports/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

// Headers del modo dev (sin verifier).
const (
	HeaderDebugUserID   = "X-Debug-User-ID"
	HeaderDebugUsername = "X-Debug-Username"
	HeaderDebugStaff    = "X-Debug-Staff"
)

// AuthContext:
// - Si verifier != nil y viene Bearer token => intenta Verify() y setea el principal.
// - Si verifier == nil => modo dev: X-Debug-User-ID (+ X-Debug-Staff: true) setea el principal.
// - Si no hay principal, el request sigue igual; los handlers deciden si exigen auth.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(HeaderDebugUserID)); uid != "" {
					staff, _ := strconv.ParseBool(strings.TrimSpace(r.Header.Get(HeaderDebugStaff)))
					p := auth.Principal{
						UserID:   uid,
						Username: strings.TrimSpace(r.Header.Get(HeaderDebugUsername)),
						IsStaff:  staff,
					}
					next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos aquí. El handler decide 401/403.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// WithPrincipal deja el principal en el contexto (útil también en tests).
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal devuelve el principal autenticado, si existe.
func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	if !ok || !p.Authenticated() {
		return auth.Principal{}, false
	}
	return p, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
