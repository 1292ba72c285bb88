package auth

import "strings"

// Principal representa al actor autenticado que entrega el identity provider.
// El core nunca maneja credenciales; solo consume identidad + flag de staff.
type Principal struct {
	UserID   string
	Username string
	Email    string
	IsStaff  bool
}

// Authenticated indica si el principal trae un user id utilizable.
func (p Principal) Authenticated() bool {
	return strings.TrimSpace(p.UserID) != ""
}
