package breeds

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/ports/auth"
)

const (
	maxNameLen        = 100
	maxTemperamentLen = 200
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// GetOrCreate es el único camino de creación de razas.
// Normaliza con trim; vacío => ErrInvalidInput. Si no existe, la crea
// sin size/temperament/description (los completa staff después).
func (s *Service) GetOrCreate(ctx context.Context, name string) (Breed, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Breed{}, err
	}

	b, _, err := s.repo.GetOrCreate(ctx, Breed{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now(),
	})
	if err != nil {
		return Breed{}, err
	}
	return b, nil
}

type DetailsInput struct {
	Name        *string
	Size        *Size
	Temperament *string
	Description *string
}

// Create (staff): get-or-create por nombre y luego aplica los detalles que vengan.
func (s *Service) Create(ctx context.Context, actor auth.Principal, name string, in DetailsInput) (Breed, error) {
	if err := auth.RequireStaff(actor); err != nil {
		return Breed{}, err
	}
	b, err := s.GetOrCreate(ctx, name)
	if err != nil {
		return Breed{}, err
	}
	in.Name = nil
	if in.Size == nil && in.Temperament == nil && in.Description == nil {
		return b, nil
	}
	return s.Update(ctx, actor, b.ID, in)
}

// Update es la edición administrativa (staff).
func (s *Service) Update(ctx context.Context, actor auth.Principal, id string, in DetailsInput) (Breed, error) {
	if err := auth.RequireStaff(actor); err != nil {
		return Breed{}, err
	}

	b, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Breed{}, err
	}

	if in.Name != nil {
		name, err := normalizeName(*in.Name)
		if err != nil {
			return Breed{}, err
		}
		b.Name = name
	}
	if in.Size != nil {
		if !in.Size.Valid() {
			return Breed{}, apperrors.ErrInvalidInput
		}
		b.Size = *in.Size
	}
	if in.Temperament != nil {
		t := strings.TrimSpace(*in.Temperament)
		if utf8.RuneCountInString(t) > maxTemperamentLen {
			return Breed{}, apperrors.ErrInvalidInput
		}
		b.Temperament = t
	}
	if in.Description != nil {
		b.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return Breed{}, err
	}
	return b, nil
}

// Delete (staff). Protegido: falla con ErrConflict si hay mascotas con esta raza.
func (s *Service) Delete(ctx context.Context, actor auth.Principal, id string) error {
	if err := auth.RequireStaff(actor); err != nil {
		return err
	}
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) GetByID(ctx context.Context, id string) (Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breed{}, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return "", apperrors.ErrInvalidInput
	}
	return name, nil
}
