package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/ports/auth"
)

type testRepo struct {
	byID  map[string]Review
	order []string
	pets  map[string]bool
}

func newTestRepo(petIDs ...string) *testRepo {
	r := &testRepo{byID: map[string]Review{}, pets: map[string]bool{}}
	for _, id := range petIDs {
		r.pets[id] = true
	}
	return r
}

func (r *testRepo) Create(_ context.Context, rv Review) error {
	if !r.pets[rv.PetID] {
		return apperrors.ErrNotFound
	}
	r.byID[rv.ID] = rv
	r.order = append([]string{rv.ID}, r.order...)
	return nil
}

func (r *testRepo) Update(_ context.Context, rv Review) error {
	if _, ok := r.byID[rv.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.byID[rv.ID] = rv
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Review, error) {
	rv, ok := r.byID[id]
	if !ok {
		return Review{}, apperrors.ErrNotFound
	}
	return rv, nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Review, error) {
	out := make([]Review, 0)
	for _, id := range r.order {
		rv, ok := r.byID[id]
		if !ok {
			continue
		}
		if f.PetID != "" && rv.PetID != f.PetID {
			continue
		}
		if f.AuthorID != "" && rv.AuthorID != f.AuthorID {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

var (
	staff = auth.Principal{UserID: "staff-1", IsStaff: true}
	alice = auth.Principal{UserID: "alice"}
	bob   = auth.Principal{UserID: "bob"}
)

func newSvc() (*Service, *testRepo) {
	repo := newTestRepo("pet-1", "pet-2")
	svc := NewService(repo)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	cases := []Input{
		{Rating: 0, Title: "t", Content: "c"},
		{Rating: 6, Title: "t", Content: "c"},
		{Rating: 3, Title: " ", Content: "c"},
		{Rating: 3, Title: "t", Content: ""},
		{Rating: 3, Title: string(make([]rune, maxTitleLen+1)), Content: "c"},
	}
	for i, in := range cases {
		_, err := svc.Create(ctx, alice, "pet-1", in)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "case %d", i)
	}

	_, err := svc.Create(ctx, auth.Principal{}, "pet-1", Input{Rating: 3, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Create(ctx, alice, "missing", Input{Rating: 3, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.Empty(t, repo.byID)
}

func TestService_Create_AllowsRepeatedAuthorPet(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, alice, "pet-1", Input{Rating: 4, Title: "Great", Content: "Sweet dog"})
		require.NoError(t, err)
	}

	items, err := svc.ListByAuthor(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestService_UpdateDelete_AuthorOrStaff(t *testing.T) {
	svc, repo := newSvc()
	ctx := context.Background()

	rv, err := svc.Create(ctx, alice, "pet-1", Input{Rating: 4, Title: "Great", Content: "Sweet dog"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob, rv.ID, Input{Rating: 1, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	got, err := svc.Update(ctx, alice, rv.ID, Input{Rating: 5, Title: " Best ", Content: "Really"})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "Best", got.Title)

	assert.ErrorIs(t, svc.Delete(ctx, bob, rv.ID), apperrors.ErrUnauthorized)
	require.NoError(t, svc.Delete(ctx, staff, rv.ID))
	assert.Empty(t, repo.byID)
}

func TestService_Summary(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	s, err := svc.Summary(ctx, "pet-1")
	require.NoError(t, err)
	assert.Zero(t, s.Count)
	assert.Nil(t, s.Average)

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.Create(ctx, alice, "pet-1", Input{Rating: rating, Title: "t", Content: "c"})
		require.NoError(t, err)
	}
	_, err = svc.Create(ctx, bob, "pet-2", Input{Rating: 1, Title: "t", Content: "c"})
	require.NoError(t, err)

	s, err = svc.Summary(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.Average)
	assert.InDelta(t, 4.33, *s.Average, 1e-9)
}
