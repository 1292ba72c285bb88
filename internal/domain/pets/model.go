package pets

import "time"

// Status de la publicación.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted:
		return true
	}
	return false
}

// Gender de la mascota.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// Pet representa una mascota publicada para adopción.
type Pet struct {
	ID string

	Name      string
	BreedID   string
	BreedName string // denormalizado al leer (join), no se persiste en pets
	Age       int

	Description  string
	HealthStatus string

	Status Status
	Gender Gender

	// PostedBy vacío = publicación curada por staff.
	PostedBy string

	ArrivalDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
