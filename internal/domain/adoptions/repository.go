package adoptions

import (
	"context"
	"time"
)

type Repository interface {
	// Create devuelve apperrors.ErrDuplicateRequest si ya existe una solicitud
	// para (pet, requester) y apperrors.ErrNotFound si la mascota no existe.
	Create(ctx context.Context, r Request) error

	// UpdatePending guarda los campos del formulario solo si la solicitud sigue
	// en pending; si no, apperrors.ErrBadState.
	UpdatePending(ctx context.Context, r Request) error

	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, error)

	// ApprovePending pasa la solicitud a approved y la mascota a adopted como
	// una sola unidad atómica, solo si la solicitud estaba en pending.
	// applied=false significa no-op: se devuelve el estado actual.
	ApprovePending(ctx context.Context, id string, at time.Time) (r Request, applied bool, err error)

	// TransitionStatus es el compare-and-swap from -> to sin efectos sobre la mascota.
	TransitionStatus(ctx context.Context, id string, from, to Status, at time.Time) (r Request, applied bool, err error)

	CountsByPet(ctx context.Context, petIDs []string) (map[string]Counts, error)
}

// ListFilter: campos vacíos no filtran. Orden: requested_at DESC.
type ListFilter struct {
	PetID       string
	RequesterID string
	Statuses    []Status
}
