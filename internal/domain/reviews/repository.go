package reviews

import "context"

type Repository interface {
	// Create devuelve apperrors.ErrNotFound si la mascota no existe.
	Create(ctx context.Context, r Review) error
	Update(ctx context.Context, r Review) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Review, error)

	// List ordena por created_at DESC.
	List(ctx context.Context, filter ListFilter) ([]Review, error)
}

type ListFilter struct {
	PetID    string
	AuthorID string
}
