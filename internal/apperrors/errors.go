package apperrors

import "errors"

// Errores compartidos entre dominios y adapters de storage.
// Se comparan siempre con errors.Is (los adapters los envuelven con %w).
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateRequest = errors.New("duplicate adoption request")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrBadState         = errors.New("invalid state")
	ErrConflict         = errors.New("conflict")
)
