package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/breeds"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/domain/reviews"
	"pet-adoption/internal/ports/auth"
)

var (
	staff = auth.Principal{UserID: "staff-1", IsStaff: true}
	alice = auth.Principal{UserID: "alice"}
	bob   = auth.Principal{UserID: "bob"}
)

type fixture struct {
	svc       *Service
	pets      *pets.Service
	adoptions *adoptions.Service
	reviews   *reviews.Service
	profiles  *profiles.Service
}

func newFixture() fixture {
	store := mem.NewStore()
	breedsSvc := breeds.NewService(store.Breeds())
	petsSvc := pets.NewService(store.Pets(), breedsSvc)
	adoptionsSvc := adoptions.NewService(store.Adoptions(), petsSvc, zap.NewNop(), nil)
	reviewsSvc := reviews.NewService(store.Reviews())
	profilesSvc := profiles.NewService(store.Profiles())

	return fixture{
		svc:       NewService(petsSvc, breedsSvc, adoptionsSvc, reviewsSvc, profilesSvc),
		pets:      petsSvc,
		adoptions: adoptionsSvc,
		reviews:   reviewsSvc,
		profiles:  profilesSvc,
	}
}

func (f fixture) pet(t *testing.T, actor auth.Principal, name, breed string) pets.Pet {
	t.Helper()
	p, err := f.pets.Create(context.Background(), actor, pets.CreateInput{Name: name, Breed: breed, Age: 2})
	require.NoError(t, err)
	return p
}

func (f fixture) request(t *testing.T, actor auth.Principal, petID string) adoptions.Request {
	t.Helper()
	r, err := f.adoptions.Create(context.Background(), actor, petID, adoptions.FormInput{Motivation: "garden"})
	require.NoError(t, err)
	return r
}

func TestService_PetDetail_AdoptedWithPendingSibling(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	luna := f.pet(t, staff, "Luna", "Labrador")
	approved := f.request(t, alice, luna.ID)
	f.request(t, bob, luna.ID)

	_, err := f.adoptions.Approve(ctx, staff, approved.ID)
	require.NoError(t, err)

	d, err := f.svc.PetDetail(ctx, luna.ID)
	require.NoError(t, err)

	assert.Equal(t, pets.StatusAdopted, d.Pet.Status)
	assert.Equal(t, "Labrador", d.Breed.Name)
	assert.Equal(t, adoptions.Counts{Total: 2, Pending: 1, Approved: 1}, d.Counts)
	assert.Nil(t, d.Poster, "curated listing has no poster")
	assert.Equal(t, 0, d.Reviews.Count)
	assert.Nil(t, d.Reviews.Average)
}

func TestService_PetDetail_PosterProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	milo := f.pet(t, alice, "Milo", "Beagle")

	d, err := f.svc.PetDetail(ctx, milo.ID)
	require.NoError(t, err)
	require.NotNil(t, d.Poster)
	assert.Equal(t, "alice", d.Poster.UserID)
	assert.Empty(t, d.Poster.ProfileID, "no profile yet")

	prof, err := f.profiles.GetOrCreateForUser(ctx, "alice")
	require.NoError(t, err)

	_, err = f.reviews.Create(ctx, bob, milo.ID, reviews.Input{Rating: 5, Title: "Sweet", Content: "Lovely"})
	require.NoError(t, err)
	_, err = f.reviews.Create(ctx, bob, milo.ID, reviews.Input{Rating: 2, Title: "Loud", Content: "Barks"})
	require.NoError(t, err)

	d, err = f.svc.PetDetail(ctx, milo.ID)
	require.NoError(t, err)
	assert.Equal(t, prof.ID, d.Poster.ProfileID)
	assert.Equal(t, 2, d.Reviews.Count)
	require.NotNil(t, d.Reviews.Average)
	assert.InDelta(t, 3.5, *d.Reviews.Average, 0.001)

	_, err = f.svc.PetDetail(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestService_BreedsWithAvailability(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a := f.pet(t, staff, "A", "Labrador")
	f.pet(t, staff, "B", "Labrador")
	f.pet(t, staff, "C", "Beagle")

	st := pets.StatusAdopted
	_, err := f.pets.Update(ctx, staff, a.ID, pets.UpdateInput{Status: &st})
	require.NoError(t, err)

	items, err := f.svc.BreedsWithAvailability(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// ordenadas por nombre
	assert.Equal(t, "Beagle", items[0].Breed.Name)
	assert.Equal(t, 1, items[0].AvailablePets)
	assert.Equal(t, "Labrador", items[1].Breed.Name)
	assert.Equal(t, 1, items[1].AvailablePets)
}

func TestService_HomeStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var first pets.Pet
	for i, name := range []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"} {
		p := f.pet(t, staff, name, "Mixed")
		if i == 0 {
			first = p
		}
	}
	r := f.request(t, alice, first.ID)
	_, err := f.adoptions.Approve(ctx, staff, r.ID)
	require.NoError(t, err)

	stats, err := f.svc.HomeStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.TotalAvailable)
	assert.Len(t, stats.Featured, featuredCount)
	assert.Equal(t, 1, stats.TotalAdoptions)
	for _, p := range stats.Featured {
		assert.Equal(t, pets.StatusAvailable, p.Status)
	}
}

func TestService_MyPets(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mine := f.pet(t, alice, "Mine", "Beagle")
	f.pet(t, alice, "Mine too", "Beagle")
	other := f.pet(t, staff, "Other", "Labrador")

	// alice adopta "Other"; bob adopta una de las publicadas por alice
	r := f.request(t, alice, other.ID)
	_, err := f.adoptions.Approve(ctx, staff, r.ID)
	require.NoError(t, err)
	r = f.request(t, bob, mine.ID)
	_, err = f.adoptions.Approve(ctx, staff, r.ID)
	require.NoError(t, err)

	out, err := f.svc.MyPets(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalPosted)
	assert.Equal(t, 1, out.TotalAdopted)
	require.Len(t, out.Adopted, 1)
	assert.Equal(t, other.ID, out.Adopted[0].ID)

	empty, err := f.svc.MyPets(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalPosted)
	assert.NotNil(t, empty.Adopted)
}
