package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/ports/auth"
)

type testRepo struct {
	byID map[string]Profile
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Profile{}}
}

func (r *testRepo) GetOrCreate(_ context.Context, p Profile) (Profile, error) {
	for _, existing := range r.byID {
		if existing.UserID == p.UserID {
			return existing, nil
		}
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return Profile{}, apperrors.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetByUserID(_ context.Context, userID string) (Profile, error) {
	for _, p := range r.byID {
		if p.UserID == userID {
			return p, nil
		}
	}
	return Profile{}, apperrors.ErrNotFound
}

func (r *testRepo) Update(_ context.Context, p Profile) error {
	if _, ok := r.byID[p.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) List(_ context.Context) ([]Profile, error) {
	out := make([]Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func TestService_GetOrCreateForUser_OnePerUser(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.GetOrCreateForUser(ctx, "alice")
	require.NoError(t, err)
	b, err := svc.GetOrCreateForUser(ctx, " alice ")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.Len(t, repo.byID, 1)

	_, err = svc.GetOrCreateForUser(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestService_Update_OwnerOnly(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	p, err := svc.GetOrCreateForUser(ctx, "alice")
	require.NoError(t, err)

	// Ni staff edita el perfil de otro.
	_, err = svc.Update(ctx, auth.Principal{UserID: "staff", IsStaff: true}, p.ID, UpdateInput{Bio: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	got, err := svc.Update(ctx, auth.Principal{UserID: "alice"}, p.ID, UpdateInput{
		Phone: strPtr(" 555-1234 "),
		City:  strPtr("Lima"),
	})
	require.NoError(t, err)
	assert.Equal(t, "555-1234", got.Phone)
	assert.Equal(t, "Lima", got.City)
	assert.False(t, got.IsVerified)
}

func TestService_Update_Lengths(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()
	alice := auth.Principal{UserID: "alice"}

	p, err := svc.GetOrCreateForUser(ctx, "alice")
	require.NoError(t, err)

	for _, in := range []UpdateInput{
		{Phone: strPtr("1234567890123456")},
		{ZipCode: strPtr("12345678901")},
	} {
		_, err := svc.Update(ctx, alice, p.ID, in)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}
}
