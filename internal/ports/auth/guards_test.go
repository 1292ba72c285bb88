package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pet-adoption/internal/apperrors"
)

func TestGuards(t *testing.T) {
	staff := Principal{UserID: "staff-1", IsStaff: true}
	owner := Principal{UserID: "user-1"}
	other := Principal{UserID: "user-2"}
	anon := Principal{}

	assert.NoError(t, RequireStaff(staff))
	assert.ErrorIs(t, RequireStaff(owner), apperrors.ErrUnauthorized)
	assert.ErrorIs(t, RequireStaff(Principal{IsStaff: true}), apperrors.ErrUnauthorized)

	assert.True(t, CanModify(staff, "user-1"))
	assert.True(t, CanModify(owner, "user-1"))
	assert.False(t, CanModify(other, "user-1"))
	assert.False(t, CanModify(anon, "user-1"))
	// recursos sin dueño (p.ej. mascotas cargadas por staff) solo los toca staff
	assert.False(t, CanModify(owner, ""))
	assert.True(t, CanModify(staff, ""))

	assert.ErrorIs(t, RequireOwnerOrStaff(other, "user-1"), apperrors.ErrUnauthorized)
	assert.NoError(t, RequireOwnerOrStaff(owner, "user-1"))
}
