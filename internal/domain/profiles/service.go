package profiles

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
	maxPhoneLen = 15
	maxCityLen  = 100
	maxStateLen = 100
	maxZipLen   = 10
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

// GetOrCreateForUser: el perfil nace vacío la primera vez que se lo pide.
func (s *Service) GetOrCreateForUser(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, apperrors.ErrInvalidInput
	}
	now := s.now()
	return s.repo.GetOrCreate(ctx, Profile{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetByUserID no crea: apperrors.ErrNotFound si el usuario aún no tiene perfil.
func (s *Service) GetByUserID(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, apperrors.ErrNotFound
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Phone   *string
	Address *string
	City    *string
	State   *string
	ZipCode *string
	Bio     *string
}

// Update: solo el propio usuario edita su perfil.
func (s *Service) Update(ctx context.Context, actor auth.Principal, id string, in UpdateInput) (Profile, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	if !actor.Authenticated() || actor.UserID != p.UserID {
		return Profile{}, apperrors.ErrUnauthorized
	}

	set := func(dst *string, v *string, max int) error {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		if max > 0 && utf8.RuneCountInString(t) > max {
			return apperrors.ErrInvalidInput
		}
		*dst = t
		return nil
	}

	for _, f := range []struct {
		dst *string
		v   *string
		max int
	}{
		{&p.Phone, in.Phone, maxPhoneLen},
		{&p.Address, in.Address, 0},
		{&p.City, in.City, maxCityLen},
		{&p.State, in.State, maxStateLen},
		{&p.ZipCode, in.ZipCode, maxZipLen},
		{&p.Bio, in.Bio, 0},
	} {
		if err := set(f.dst, f.v, f.max); err != nil {
			return Profile{}, err
		}
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
