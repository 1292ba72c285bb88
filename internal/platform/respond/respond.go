package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption/internal/apperrors"
)

// JSON escribe v como JSON con el status indicado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor traduce los errores de dominio a status HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateRequest),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrBadState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error responde con el status de StatusFor. Los 500 no filtran el detalle.
func Error(w http.ResponseWriter, err error) {
	st := StatusFor(err)
	msg := err.Error()
	switch st {
	case http.StatusForbidden:
		msg = "forbidden"
	case http.StatusInternalServerError:
		msg = "internal error"
	}
	http.Error(w, msg, st)
}

// Unauthenticated es el 401 cuando no hay principal.
func Unauthenticated(w http.ResponseWriter) {
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

// DecodeJSON decodifica el body rechazando campos desconocidos.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
