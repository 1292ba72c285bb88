package breeds

import "time"

// Size es el tamaño de la raza.
// @Enum small, medium, large, extra_large
type Size string

const (
	SizeUnset      Size = ""
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra_large"
)

func (s Size) Valid() bool {
	switch s {
	case SizeUnset, SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

// Breed es una raza del catálogo. El nombre es único (match exacto, case-sensitive).
// No se puede borrar mientras alguna mascota la referencie.
type Breed struct {
	ID   string
	Name string

	Size        Size
	Temperament string
	Description string

	CreatedAt time.Time
}
