package reviews

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/ports/auth"
)

const maxTitleLen = 200

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

type Input struct {
	Rating  int
	Title   string
	Content string
}

func (in Input) normalize() (Input, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	if in.Rating < MinRating || in.Rating > MaxRating {
		return Input{}, apperrors.ErrInvalidInput
	}
	if in.Title == "" || utf8.RuneCountInString(in.Title) > maxTitleLen {
		return Input{}, apperrors.ErrInvalidInput
	}
	if in.Content == "" {
		return Input{}, apperrors.ErrInvalidInput
	}
	return in, nil
}

func (s *Service) Create(ctx context.Context, actor auth.Principal, petID string, in Input) (Review, error) {
	if !actor.Authenticated() {
		return Review{}, apperrors.ErrUnauthorized
	}
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Review{}, apperrors.ErrNotFound
	}

	in, err := in.normalize()
	if err != nil {
		return Review{}, err
	}

	now := s.now()
	r := Review{
		ID:        uuid.NewString(),
		PetID:     petID,
		AuthorID:  actor.UserID,
		Rating:    in.Rating,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Review{}, err
	}
	return r, nil
}

// Update reemplaza rating/título/contenido (autor o staff).
func (s *Service) Update(ctx context.Context, actor auth.Principal, id string, in Input) (Review, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return Review{}, err
	}
	if err := auth.RequireOwnerOrStaff(actor, r.AuthorID); err != nil {
		return Review{}, err
	}

	in, err = in.normalize()
	if err != nil {
		return Review{}, err
	}

	r.Rating = in.Rating
	r.Title = in.Title
	r.Content = in.Content
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		return Review{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, actor auth.Principal, id string) error {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.RequireOwnerOrStaff(actor, r.AuthorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, r.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Review, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Review{}, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Review, error) {
	return s.repo.List(ctx, ListFilter{})
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Review, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.List(ctx, ListFilter{PetID: petID})
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string) ([]Review, error) {
	authorID = strings.TrimSpace(authorID)
	if authorID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.List(ctx, ListFilter{AuthorID: authorID})
}

// Summary: cantidad y promedio (2 decimales) de las reseñas de la mascota.
func (s *Service) Summary(ctx context.Context, petID string) (Summary, error) {
	items, err := s.ListByPet(ctx, petID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func Summarize(items []Review) Summary {
	if len(items) == 0 {
		return Summary{}
	}
	total := 0
	for _, r := range items {
		total += r.Rating
	}
	avg := math.Round(float64(total)/float64(len(items))*100) / 100
	return Summary{Count: len(items), Average: &avg}
}
