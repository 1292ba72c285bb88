package memory

import (
	"context"
	"errors"
	"sort"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/reviews"
)

type reviewRepo struct {
	s *Store
}

func (r *reviewRepo) Create(ctx context.Context, rv reviews.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if rv.ID == "" {
		return errors.New("review id required")
	}
	if _, ok := r.s.pets[rv.PetID]; !ok {
		return apperrors.ErrNotFound
	}
	r.s.reviews[rv.ID] = rv
	return nil
}

func (r *reviewRepo) Update(ctx context.Context, rv reviews.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.reviews[rv.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	cur.Rating = rv.Rating
	cur.Title = rv.Title
	cur.Content = rv.Content
	cur.UpdatedAt = rv.UpdatedAt
	r.s.reviews[rv.ID] = cur
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.reviews, id)
	return nil
}

func (r *reviewRepo) GetByID(ctx context.Context, id string) (reviews.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rv, ok := r.s.reviews[id]
	if !ok {
		return reviews.Review{}, apperrors.ErrNotFound
	}
	return rv, nil
}

func (r *reviewRepo) List(ctx context.Context, f reviews.ListFilter) ([]reviews.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]reviews.Review, 0)
	for _, rv := range r.s.reviews {
		if f.PetID != "" && rv.PetID != f.PetID {
			continue
		}
		if f.AuthorID != "" && rv.AuthorID != f.AuthorID {
			continue
		}
		out = append(out, rv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
