package memory

import (
	"context"
	"errors"
	"sort"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/breeds"
)

type breedRepo struct {
	s *Store
}

func (r *breedRepo) GetOrCreate(ctx context.Context, b breeds.Breed) (breeds.Breed, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if b.ID == "" {
		return breeds.Breed{}, false, errors.New("breed id required")
	}
	for _, existing := range r.s.breeds {
		if existing.Name == b.Name {
			return existing, false, nil
		}
	}
	r.s.breeds[b.ID] = b
	return b, true, nil
}

func (r *breedRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.breeds[id]
	if !ok {
		return breeds.Breed{}, apperrors.ErrNotFound
	}
	return b, nil
}

func (r *breedRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.s.breeds))
	for _, b := range r.s.breeds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *breedRepo) Update(ctx context.Context, b breeds.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[b.ID]; !ok {
		return apperrors.ErrNotFound
	}
	for _, existing := range r.s.breeds {
		if existing.ID != b.ID && existing.Name == b.Name {
			return apperrors.ErrConflict
		}
	}
	r.s.breeds[b.ID] = b
	return nil
}

func (r *breedRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[id]; !ok {
		return apperrors.ErrNotFound
	}
	for _, p := range r.s.pets {
		if p.BreedID == id {
			return apperrors.ErrConflict
		}
	}
	delete(r.s.breeds, id)
	return nil
}
