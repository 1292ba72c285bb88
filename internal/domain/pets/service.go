package pets

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/breeds"
	"pet-adoption/internal/ports/auth"
)

const (
	maxNameLen = 100

	DefaultPageSize = 12
	MaxPageSize     = 100
)

// BreedResolver resuelve el nombre tipeado a una raza (get-or-create).
type BreedResolver interface {
	GetOrCreate(ctx context.Context, name string) (breeds.Breed, error)
}

type Service struct {
	repo   Repository
	breeds BreedResolver
	now    func() time.Time
}

func NewService(repo Repository, breeds BreedResolver) *Service {
	return &Service{
		repo:   repo,
		breeds: breeds,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name         string
	Breed        string
	Age          int
	Description  string
	HealthStatus string
	Gender       Gender
	Status       Status // solo staff; se ignora en publicaciones de usuarios
}

// Create publica una mascota.
// - staff: publicación curada (sin PostedBy), puede elegir status.
// - usuario autenticado: auto-publicación, PostedBy = actor y status available.
func (s *Service) Create(ctx context.Context, actor auth.Principal, in CreateInput) (Pet, error) {
	if !actor.Authenticated() {
		return Pet{}, apperrors.ErrUnauthorized
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return Pet{}, apperrors.ErrInvalidInput
	}
	if in.Age < 0 {
		return Pet{}, apperrors.ErrInvalidInput
	}

	gender := in.Gender
	if gender == "" {
		gender = GenderUnknown
	}
	if !gender.Valid() {
		return Pet{}, apperrors.ErrInvalidInput
	}

	status := StatusAvailable
	postedBy := actor.UserID
	if actor.IsStaff {
		postedBy = ""
		if in.Status != "" {
			if !in.Status.Valid() {
				return Pet{}, apperrors.ErrInvalidInput
			}
			status = in.Status
		}
	}

	breed, err := s.breeds.GetOrCreate(ctx, in.Breed)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		Name:         name,
		BreedID:      breed.ID,
		BreedName:    breed.Name,
		Age:          in.Age,
		Description:  strings.TrimSpace(in.Description),
		HealthStatus: strings.TrimSpace(in.HealthStatus),
		Status:       status,
		Gender:       gender,
		PostedBy:     postedBy,
		ArrivalDate:  now.UTC().Truncate(24 * time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name         *string
	Breed        *string
	Age          *int
	Description  *string
	HealthStatus *string
	Gender       *Gender
	Status       *Status
}

// Update edita la publicación (dueño o staff). Status es una escritura aparte
// y solo la hace staff.
func (s *Service) Update(ctx context.Context, actor auth.Principal, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if err := authorizeEdit(actor, p); err != nil {
		return Pet{}, err
	}
	if in.Status != nil {
		if err := authorizeStatusChange(actor); err != nil {
			return Pet{}, err
		}
		if !in.Status.Valid() {
			return Pet{}, apperrors.ErrInvalidInput
		}
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || utf8.RuneCountInString(name) > maxNameLen {
			return Pet{}, apperrors.ErrInvalidInput
		}
		p.Name = name
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, apperrors.ErrInvalidInput
		}
		p.Age = *in.Age
	}
	if in.Gender != nil {
		if !in.Gender.Valid() {
			return Pet{}, apperrors.ErrInvalidInput
		}
		p.Gender = *in.Gender
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.HealthStatus != nil {
		p.HealthStatus = strings.TrimSpace(*in.HealthStatus)
	}
	if in.Breed != nil {
		b, err := s.breeds.GetOrCreate(ctx, *in.Breed)
		if err != nil {
			return Pet{}, err
		}
		p.BreedID = b.ID
		p.BreedName = b.Name
	}

	now := s.now()
	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}

	if in.Status != nil && *in.Status != p.Status {
		if err := s.repo.SetStatus(ctx, p.ID, *in.Status, now); err != nil {
			return Pet{}, err
		}
	}

	// Releer: el status pudo cambiar por otra vía (aprobación) entre medio.
	return s.repo.GetByID(ctx, p.ID)
}

// Delete (dueño o staff). Arrastra solicitudes y reseñas.
func (s *Service) Delete(ctx context.Context, actor auth.Principal, id string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeEdit(actor, p); err != nil {
		return err
	}
	return s.repo.Delete(ctx, p.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, normalizeFilter(filter))
}

func (s *Service) Count(ctx context.Context, filter ListFilter) (int, error) {
	f := normalizeFilter(filter)
	f.Limit, f.Offset = 0, 0
	return s.repo.Count(ctx, f)
}

// ListByPoster son "mis mascotas": todo lo que publicó el usuario, cualquier status.
func (s *Service) ListByPoster(ctx context.Context, userID string) ([]Pet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.List(ctx, ListFilter{PostedBy: userID})
}

func normalizeFilter(f ListFilter) ListFilter {
	f.BreedName = strings.TrimSpace(f.BreedName)
	f.Query = strings.TrimSpace(f.Query)
	f.BreedID = strings.TrimSpace(f.BreedID)
	f.PostedBy = strings.TrimSpace(f.PostedBy)
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
