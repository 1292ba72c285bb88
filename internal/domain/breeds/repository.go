package breeds

import "context"

type Repository interface {
	// GetOrCreate busca por nombre exacto y si no existe inserta b.
	// Debe ser atómico frente a dos creaciones concurrentes del mismo nombre.
	// created indica si se insertó.
	GetOrCreate(ctx context.Context, b Breed) (out Breed, created bool, err error)

	GetByID(ctx context.Context, id string) (Breed, error)
	List(ctx context.Context) ([]Breed, error)

	// Update devuelve apperrors.ErrConflict si el nombre nuevo ya existe.
	Update(ctx context.Context, b Breed) error

	// Delete devuelve apperrors.ErrConflict si alguna mascota referencia la raza.
	Delete(ctx context.Context, id string) error
}
