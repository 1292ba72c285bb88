package auth

import "pet-adoption/internal/apperrors"

// Guards explícitos: se evalúan antes de cualquier mutación,
// reciben el principal y el dueño del recurso objetivo.

// RequireStaff falla con ErrUnauthorized si el actor no es staff.
func RequireStaff(p Principal) error {
	if !p.Authenticated() || !p.IsStaff {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// CanModify: staff siempre; si no, solo el dueño del recurso.
func CanModify(p Principal, ownerUserID string) bool {
	if !p.Authenticated() {
		return false
	}
	if p.IsStaff {
		return true
	}
	return ownerUserID != "" && p.UserID == ownerUserID
}

// RequireOwnerOrStaff es la versión con error de CanModify.
func RequireOwnerOrStaff(p Principal, ownerUserID string) error {
	if !CanModify(p, ownerUserID) {
		return apperrors.ErrUnauthorized
	}
	return nil
}
