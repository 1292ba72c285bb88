package pets

import (
	"context"
	"time"
)

type Repository interface {
	// Create devuelve apperrors.ErrNotFound si la raza no existe.
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// Update persiste todo menos Status: el status solo se escribe con SetStatus
	// (edición explícita de staff) o desde el motor de adopciones.
	Update(ctx context.Context, p Pet) error
	SetStatus(ctx context.Context, id string, status Status, at time.Time) error

	// Delete borra la mascota y en cascada sus solicitudes y reseñas.
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter: los campos vacíos no filtran. Orden: created_at DESC.
type ListFilter struct {
	Statuses []Status
	Gender   Gender
	BreedID  string

	// BreedName y Query son "contains" case-insensitive.
	BreedName string
	// Query busca en nombre, raza y descripción.
	Query string

	PostedBy string
	IDs      []string

	Limit  int // 0 = sin límite
	Offset int
}
