package pets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/breeds"
	"pet-adoption/internal/ports/auth"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID        map[string]Pet
	statusSets  int
	lastUpdated Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, apperrors.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	cur, ok := r.byID[p.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Status = cur.Status
	r.byID[p.ID] = p
	r.lastUpdated = p
	return nil
}

func (r *testRepo) SetStatus(_ context.Context, id string, st Status, at time.Time) error {
	p, ok := r.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Status = st
	p.UpdatedAt = at
	r.byID[id] = p
	r.statusSets++
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Pet, error) {
	var out []Pet
	for _, p := range r.byID {
		if f.PostedBy != "" && p.PostedBy != f.PostedBy {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Count(ctx context.Context, f ListFilter) (int, error) {
	items, err := r.List(ctx, f)
	return len(items), err
}

type testBreeds struct {
	byName map[string]breeds.Breed
}

func (b *testBreeds) GetOrCreate(_ context.Context, name string) (breeds.Breed, error) {
	if b.byName == nil {
		b.byName = map[string]breeds.Breed{}
	}
	if name == "" {
		return breeds.Breed{}, apperrors.ErrInvalidInput
	}
	if br, ok := b.byName[name]; ok {
		return br, nil
	}
	br := breeds.Breed{ID: uuid.NewString(), Name: name}
	b.byName[name] = br
	return br, nil
}

var (
	staff = auth.Principal{UserID: "staff-1", IsStaff: true}
	alice = auth.Principal{UserID: "alice"}
	bob   = auth.Principal{UserID: "bob"}
)

func newSvc() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, &testBreeds{})
	now := time.Date(2025, 12, 22, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_SelfPostForcesAvailable(t *testing.T) {
	svc, _ := newSvc()

	p, err := svc.Create(context.Background(), alice, CreateInput{
		Name:   " Rex ",
		Breed:  "Beagle",
		Age:    3,
		Status: StatusAdopted,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, StatusAvailable, p.Status)
	assert.Equal(t, "alice", p.PostedBy)
	assert.Equal(t, GenderUnknown, p.Gender)
	assert.Equal(t, "Beagle", p.BreedName)
	assert.Equal(t, "2025-12-22", p.ArrivalDate.Format("2006-01-02"))
}

func TestService_Create_StaffCurated(t *testing.T) {
	svc, _ := newSvc()

	p, err := svc.Create(context.Background(), staff, CreateInput{
		Name:   "Luna",
		Breed:  "Pug",
		Gender: GenderFemale,
		Status: StatusPending,
	})
	require.NoError(t, err)
	assert.Empty(t, p.PostedBy)
	assert.Equal(t, StatusPending, p.Status)
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	_, err := svc.Create(ctx, auth.Principal{}, CreateInput{Name: "Rex", Breed: "Pug"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Create(ctx, alice, CreateInput{Name: "  ", Breed: "Pug"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: "Pug", Age: -1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: "Pug", Gender: "other"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, staff, CreateInput{Name: "Rex", Breed: "Pug", Status: "lost"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: ""})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	assert.Empty(t, repo.byID)
}

func TestService_Update_OwnerCannotChangeStatus(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	p, err := svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: "Pug"})
	require.NoError(t, err)

	adopted := StatusAdopted
	_, err = svc.Update(ctx, alice, p.ID, UpdateInput{Status: &adopted})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, StatusAvailable, repo.byID[p.ID].Status)

	name := "Rexy"
	_, err = svc.Update(ctx, bob, p.ID, UpdateInput{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	got, err := svc.Update(ctx, alice, p.ID, UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Rexy", got.Name)
	assert.Zero(t, repo.statusSets)
}

func TestService_Update_StaffSetsStatusSeparately(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	p, err := svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: "Pug"})
	require.NoError(t, err)

	adopted := StatusAdopted
	breed := "Beagle"
	got, err := svc.Update(ctx, staff, p.ID, UpdateInput{Status: &adopted, Breed: &breed})
	require.NoError(t, err)
	assert.Equal(t, StatusAdopted, got.Status)
	assert.Equal(t, "Beagle", got.BreedName)
	assert.Equal(t, 1, repo.statusSets)
}

func TestService_Update_DoesNotClobberConcurrentStatus(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	p, err := svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: "Pug"})
	require.NoError(t, err)

	// Otra escritura (aprobación) marca adopted; una edición normal no lo pisa.
	require.NoError(t, repo.SetStatus(ctx, p.ID, StatusAdopted, time.Now()))

	desc := "muy tranquilo"
	got, err := svc.Update(ctx, alice, p.ID, UpdateInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, StatusAdopted, got.Status)
	assert.Equal(t, "muy tranquilo", got.Description)
}

func TestService_Delete_OwnerOrStaff(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	curated, err := svc.Create(ctx, staff, CreateInput{Name: "Luna", Breed: "Pug"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete(ctx, alice, curated.ID), apperrors.ErrUnauthorized)

	mine, err := svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: "Pug"})
	require.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, alice, mine.ID))
	assert.NoError(t, svc.Delete(ctx, staff, curated.ID))
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, svc.Delete(ctx, staff, "missing"), apperrors.ErrNotFound)
}

func TestService_ListByPoster(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, CreateInput{Name: "Rex", Breed: "Pug"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, CreateInput{Name: "Toby", Breed: "Pug"})
	require.NoError(t, err)

	items, err := svc.ListByPoster(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rex", items[0].Name)

	_, err = svc.ListByPoster(ctx, " ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
