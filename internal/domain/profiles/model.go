package profiles

import "time"

// Profile extiende al usuario del proveedor de identidad (1 a 1 por UserID).
type Profile struct {
	ID     string
	UserID string

	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Bio     string

	// IsVerified lo maneja staff/proveedor; el usuario no lo edita.
	IsVerified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
