package reviews

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review de una mascota. No hay unicidad por (autor, mascota):
// una misma persona puede dejar varias.
type Review struct {
	ID string

	PetID    string
	AuthorID string

	Rating  int
	Title   string
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary agrega las reseñas de una mascota.
// Average es nil cuando no hay reseñas.
type Summary struct {
	Count   int
	Average *float64
}
