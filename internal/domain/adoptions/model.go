package adoptions

import "time"

// Status de una solicitud de adopción.
// pending -> approved | rejected, approved -> completed. Nada vuelve a pending.
// @Enum pending, approved, rejected, completed
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Request es una solicitud de adopción. Única por (PetID, RequesterID).
type Request struct {
	ID string

	PetID       string
	RequesterID string

	Status Status

	Motivation           string
	HomeType             string
	HasOtherPets         bool
	OtherPetsDescription string

	RequestedAt time.Time
	UpdatedAt   time.Time
}

// Counts por mascota, para las proyecciones del catálogo.
type Counts struct {
	Total    int
	Pending  int
	Approved int
}
