package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

type adoptionRepo struct {
	s *Store
}

func (r *adoptionRepo) Create(ctx context.Context, req adoptions.Request) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if req.ID == "" {
		return errors.New("adoption request id required")
	}
	if _, ok := r.s.pets[req.PetID]; !ok {
		return apperrors.ErrNotFound
	}
	for _, existing := range r.s.requests {
		if existing.PetID == req.PetID && existing.RequesterID == req.RequesterID {
			return apperrors.ErrDuplicateRequest
		}
	}
	r.s.requests[req.ID] = req
	return nil
}

func (r *adoptionRepo) UpdatePending(ctx context.Context, req adoptions.Request) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.requests[req.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if cur.Status != adoptions.StatusPending {
		return apperrors.ErrBadState
	}

	cur.Motivation = req.Motivation
	cur.HomeType = req.HomeType
	cur.HasOtherPets = req.HasOtherPets
	cur.OtherPetsDescription = req.OtherPetsDescription
	cur.UpdatedAt = req.UpdatedAt
	r.s.requests[req.ID] = cur
	return nil
}

func (r *adoptionRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.requests, id)
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.requests[id]
	if !ok {
		return adoptions.Request{}, apperrors.ErrNotFound
	}
	return req, nil
}

func (r *adoptionRepo) List(ctx context.Context, f adoptions.ListFilter) ([]adoptions.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adoptions.Request, 0)
	for _, req := range r.s.requests {
		if f.PetID != "" && req.PetID != f.PetID {
			continue
		}
		if f.RequesterID != "" && req.RequesterID != f.RequesterID {
			continue
		}
		if len(f.Statuses) > 0 && !containsRequestStatus(f.Statuses, req.Status) {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RequestedAt.Equal(out[j].RequestedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].RequestedAt.After(out[j].RequestedAt)
	})
	return out, nil
}

// ApprovePending escribe solicitud y mascota bajo el mismo lock: ningún
// lector ve una sin la otra.
func (r *adoptionRepo) ApprovePending(ctx context.Context, id string, at time.Time) (adoptions.Request, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return adoptions.Request{}, false, apperrors.ErrNotFound
	}
	if req.Status != adoptions.StatusPending {
		return req, false, nil
	}
	p, ok := r.s.pets[req.PetID]
	if !ok {
		// No debería pasar: borrar la mascota arrastra sus solicitudes.
		return adoptions.Request{}, false, apperrors.ErrNotFound
	}

	req.Status = adoptions.StatusApproved
	req.UpdatedAt = at
	p.Status = pets.StatusAdopted
	p.UpdatedAt = at

	r.s.requests[id] = req
	r.s.pets[p.ID] = p
	return req, true, nil
}

func (r *adoptionRepo) TransitionStatus(ctx context.Context, id string, from, to adoptions.Status, at time.Time) (adoptions.Request, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return adoptions.Request{}, false, apperrors.ErrNotFound
	}
	if req.Status != from {
		return req, false, nil
	}
	req.Status = to
	req.UpdatedAt = at
	r.s.requests[id] = req
	return req, true, nil
}

func (r *adoptionRepo) CountsByPet(ctx context.Context, petIDs []string) (map[string]adoptions.Counts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]adoptions.Counts, len(petIDs))
	for _, id := range petIDs {
		out[id] = adoptions.Counts{}
	}
	for _, req := range r.s.requests {
		c, ok := out[req.PetID]
		if !ok {
			continue
		}
		c.Total++
		switch req.Status {
		case adoptions.StatusPending:
			c.Pending++
		case adoptions.StatusApproved:
			c.Approved++
		}
		out[req.PetID] = c
	}
	return out, nil
}

func containsRequestStatus(list []adoptions.Status, st adoptions.Status) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}
