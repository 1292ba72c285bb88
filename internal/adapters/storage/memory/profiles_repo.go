package memory

import (
	"context"
	"errors"
	"sort"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/profiles"
)

type profileRepo struct {
	s *Store
}

func (r *profileRepo) GetOrCreate(ctx context.Context, p profiles.Profile) (profiles.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		return profiles.Profile{}, errors.New("profile id required")
	}
	for _, existing := range r.s.profiles {
		if existing.UserID == p.UserID {
			return existing, nil
		}
	}
	r.s.profiles[p.ID] = p
	return p, nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[id]
	if !ok {
		return profiles.Profile{}, apperrors.ErrNotFound
	}
	return p, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (profiles.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return profiles.Profile{}, apperrors.ErrNotFound
}

// Update no toca IsVerified ni UserID.
func (r *profileRepo) Update(ctx context.Context, p profiles.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.profiles[p.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.UserID = cur.UserID
	p.IsVerified = cur.IsVerified
	p.CreatedAt = cur.CreatedAt
	r.s.profiles[p.ID] = p
	return nil
}

func (r *profileRepo) List(ctx context.Context) ([]profiles.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]profiles.Profile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}
