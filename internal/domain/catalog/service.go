package catalog

import (
	"context"
	"errors"
	"sort"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/breeds"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/domain/reviews"
)

const featuredCount = 6

// Vistas de solo lectura que cruzan módulos. Nada de esto muta estado.

type (
	PetReader interface {
		GetByID(ctx context.Context, id string) (pets.Pet, error)
		List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error)
		Count(ctx context.Context, filter pets.ListFilter) (int, error)
		ListByPoster(ctx context.Context, userID string) ([]pets.Pet, error)
	}
	BreedReader interface {
		GetByID(ctx context.Context, id string) (breeds.Breed, error)
		List(ctx context.Context) ([]breeds.Breed, error)
	}
	AdoptionReader interface {
		CountsByPet(ctx context.Context, petIDs []string) (map[string]adoptions.Counts, error)
		CountByStatus(ctx context.Context, st adoptions.Status) (int, error)
		ListByRequester(ctx context.Context, requesterID string, statuses ...adoptions.Status) ([]adoptions.Request, error)
	}
	ReviewReader interface {
		Summary(ctx context.Context, petID string) (reviews.Summary, error)
	}
	ProfileReader interface {
		GetByUserID(ctx context.Context, userID string) (profiles.Profile, error)
	}
)

type Service struct {
	pets      PetReader
	breeds    BreedReader
	adoptions AdoptionReader
	reviews   ReviewReader
	profiles  ProfileReader
}

func NewService(p PetReader, b BreedReader, a AdoptionReader, r ReviewReader, pr ProfileReader) *Service {
	return &Service{pets: p, breeds: b, adoptions: a, reviews: r, profiles: pr}
}

// PetDetail es la ficha completa de una mascota.
type PetDetail struct {
	Pet     pets.Pet
	Breed   breeds.Breed
	Poster  *Poster
	Counts  adoptions.Counts
	Reviews reviews.Summary
}

// Poster es quien publicó la mascota; ProfileID vacío si aún no tiene perfil.
type Poster struct {
	UserID    string
	ProfileID string
}

// PetDetail: una mascota adoptada con solicitudes aún pendientes se ve en
// Counts.Pending; el motor no las resuelve.
func (s *Service) PetDetail(ctx context.Context, petID string) (PetDetail, error) {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return PetDetail{}, err
	}
	b, err := s.breeds.GetByID(ctx, p.BreedID)
	if err != nil {
		return PetDetail{}, err
	}
	counts, err := s.adoptions.CountsByPet(ctx, []string{p.ID})
	if err != nil {
		return PetDetail{}, err
	}
	sum, err := s.reviews.Summary(ctx, p.ID)
	if err != nil {
		return PetDetail{}, err
	}

	d := PetDetail{Pet: p, Breed: b, Counts: counts[p.ID], Reviews: sum}
	if p.PostedBy != "" {
		d.Poster = &Poster{UserID: p.PostedBy}
		prof, err := s.profiles.GetByUserID(ctx, p.PostedBy)
		switch {
		case err == nil:
			d.Poster.ProfileID = prof.ID
		case !errors.Is(err, apperrors.ErrNotFound):
			return PetDetail{}, err
		}
	}
	return d, nil
}

type BreedWithCount struct {
	Breed         breeds.Breed
	AvailablePets int
}

// BreedsWithAvailability: razas por nombre con su cantidad de mascotas available.
func (s *Service) BreedsWithAvailability(ctx context.Context) ([]BreedWithCount, error) {
	items, err := s.breeds.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BreedWithCount, 0, len(items))
	for _, b := range items {
		n, err := s.pets.Count(ctx, pets.ListFilter{
			BreedID:  b.ID,
			Statuses: []pets.Status{pets.StatusAvailable},
		})
		if err != nil {
			return nil, err
		}
		out = append(out, BreedWithCount{Breed: b, AvailablePets: n})
	}
	return out, nil
}

type Stats struct {
	Featured       []pets.Pet
	TotalAvailable int
	TotalAdoptions int
}

// HomeStats: destacadas, total disponibles y adopciones aprobadas.
func (s *Service) HomeStats(ctx context.Context) (Stats, error) {
	available := pets.ListFilter{Statuses: []pets.Status{pets.StatusAvailable}}

	total, err := s.pets.Count(ctx, available)
	if err != nil {
		return Stats{}, err
	}
	featured := available
	featured.Limit = featuredCount
	items, err := s.pets.List(ctx, featured)
	if err != nil {
		return Stats{}, err
	}
	adopted, err := s.adoptions.CountByStatus(ctx, adoptions.StatusApproved)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Featured: items, TotalAvailable: total, TotalAdoptions: adopted}, nil
}

type MyPets struct {
	Posted       []pets.Pet
	TotalPosted  int
	TotalAdopted int // de las publicadas, cuántas ya fueron adoptadas

	// Adopted son las mascotas que el usuario adoptó (solicitud aprobada).
	Adopted []pets.Pet
}

func (s *Service) MyPets(ctx context.Context, userID string) (MyPets, error) {
	posted, err := s.pets.ListByPoster(ctx, userID)
	if err != nil {
		return MyPets{}, err
	}
	out := MyPets{Posted: posted, TotalPosted: len(posted)}
	for _, p := range posted {
		if p.Status == pets.StatusAdopted {
			out.TotalAdopted++
		}
	}

	approved, err := s.adoptions.ListByRequester(ctx, userID, adoptions.StatusApproved)
	if err != nil {
		return MyPets{}, err
	}
	if len(approved) == 0 {
		out.Adopted = []pets.Pet{}
		return out, nil
	}
	ids := make([]string, 0, len(approved))
	for _, r := range approved {
		ids = append(ids, r.PetID)
	}
	adopted, err := s.pets.List(ctx, pets.ListFilter{IDs: ids})
	if err != nil {
		return MyPets{}, err
	}
	sort.SliceStable(adopted, func(i, j int) bool {
		return adopted[i].UpdatedAt.After(adopted[j].UpdatedAt)
	})
	out.Adopted = adopted
	return out, nil
}
