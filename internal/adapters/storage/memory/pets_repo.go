package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.s.pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	if _, ok := r.s.breeds[p.BreedID]; !ok {
		return apperrors.ErrNotFound
	}
	r.s.pets[p.ID] = p
	return nil
}

// Update no toca Status (ver SetStatus).
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, exists := r.s.pets[p.ID]
	if !exists {
		return apperrors.ErrNotFound
	}
	if _, ok := r.s.breeds[p.BreedID]; !ok {
		return apperrors.ErrNotFound
	}
	p.Status = cur.Status
	p.PostedBy = cur.PostedBy
	p.CreatedAt = cur.CreatedAt
	r.s.pets[p.ID] = p
	return nil
}

func (r *petRepo) SetStatus(ctx context.Context, id string, status pets.Status, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pets[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = at
	r.s.pets[id] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, apperrors.ErrNotFound
	}
	return r.s.withBreedName(p), nil
}

// Delete arrastra solicitudes y reseñas de la mascota.
func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.pets, id)
	for rid, req := range r.s.requests {
		if req.PetID == id {
			delete(r.s.requests, rid)
		}
	}
	for rid, rv := range r.s.reviews {
		if rv.PetID == id {
			delete(r.s.reviews, rid)
		}
	}
	return nil
}

func (r *petRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := r.s.filterPets(f)
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []pets.Pet{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *petRepo) Count(ctx context.Context, f pets.ListFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.filterPets(f)), nil
}

// filterPets asume el lock tomado. Orden: created_at DESC.
func (s *Store) filterPets(f pets.ListFilter) []pets.Pet {
	var ids map[string]struct{}
	if len(f.IDs) > 0 {
		ids = make(map[string]struct{}, len(f.IDs))
		for _, id := range f.IDs {
			ids[id] = struct{}{}
		}
	}
	breedName := strings.ToLower(f.BreedName)
	query := strings.ToLower(f.Query)

	out := make([]pets.Pet, 0)
	for _, p := range s.pets {
		p = s.withBreedName(p)

		if len(f.Statuses) > 0 && !containsPetStatus(f.Statuses, p.Status) {
			continue
		}
		if f.Gender != "" && p.Gender != f.Gender {
			continue
		}
		if f.BreedID != "" && p.BreedID != f.BreedID {
			continue
		}
		if breedName != "" && !strings.Contains(strings.ToLower(p.BreedName), breedName) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.BreedName), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if f.PostedBy != "" && p.PostedBy != f.PostedBy {
			continue
		}
		if ids != nil {
			if _, ok := ids[p.ID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) withBreedName(p pets.Pet) pets.Pet {
	if b, ok := s.breeds[p.BreedID]; ok {
		p.BreedName = b.Name
	}
	return p
}

func containsPetStatus(list []pets.Status, st pets.Status) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}
