package pets

import (
	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/ports/auth"
)

// Staff edita todo. Un usuario solo lo que publicó él mismo;
// las publicaciones curadas (PostedBy vacío) son solo de staff.
func authorizeEdit(actor auth.Principal, p Pet) error {
	return auth.RequireOwnerOrStaff(actor, p.PostedBy)
}

// El status solo lo cambia staff de forma explícita. Los dueños
// no lo tocan (aprobar una solicitud es lo que marca "adopted").
func authorizeStatusChange(actor auth.Principal) error {
	if !actor.IsStaff {
		return apperrors.ErrUnauthorized
	}
	return nil
}
