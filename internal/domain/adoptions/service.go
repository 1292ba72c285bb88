package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/ports/auth"
)

const maxHomeTypeLen = 100

// PetLookup es lo único que el motor necesita del catálogo.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

// TransitionRecorder recibe cada transición aplicada (métricas).
type TransitionRecorder interface {
	RecordTransition(to string)
}

type Service struct {
	repo     Repository
	pets     PetLookup
	log      *zap.Logger
	recorder TransitionRecorder
	now      func() time.Time
}

// NewService: log y recorder pueden ser nil.
func NewService(repo Repository, pets PetLookup, log *zap.Logger, recorder TransitionRecorder) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		pets:     pets,
		log:      log.Named("adoptions"),
		recorder: recorder,
		now:      time.Now,
	}
}

type FormInput struct {
	Motivation           string
	HomeType             string
	HasOtherPets         bool
	OtherPetsDescription string
}

func (in FormInput) normalize() (FormInput, error) {
	in.Motivation = strings.TrimSpace(in.Motivation)
	in.HomeType = strings.TrimSpace(in.HomeType)
	in.OtherPetsDescription = strings.TrimSpace(in.OtherPetsDescription)

	if in.Motivation == "" {
		return FormInput{}, apperrors.ErrInvalidInput
	}
	if utf8.RuneCountInString(in.HomeType) > maxHomeTypeLen {
		return FormInput{}, apperrors.ErrInvalidInput
	}
	return in, nil
}

// Create inserta una solicitud en pending. No toca la mascota: una mascota
// puede acumular varias solicitudes pendientes de distintas personas.
func (s *Service) Create(ctx context.Context, actor auth.Principal, petID string, in FormInput) (Request, error) {
	if !actor.Authenticated() {
		return Request{}, apperrors.ErrUnauthorized
	}
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Request{}, apperrors.ErrNotFound
	}
	if _, err := s.pets.GetByID(ctx, petID); err != nil {
		return Request{}, err
	}

	form, err := in.normalize()
	if err != nil {
		return Request{}, err
	}

	now := s.now()
	r := Request{
		ID:                   uuid.NewString(),
		PetID:                petID,
		RequesterID:          actor.UserID,
		Status:               StatusPending,
		Motivation:           form.Motivation,
		HomeType:             form.HomeType,
		HasOtherPets:         form.HasOtherPets,
		OtherPetsDescription: form.OtherPetsDescription,
		RequestedAt:          now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Request{}, err
	}
	s.log.Info("adoption request created",
		zap.String("request_id", r.ID),
		zap.String("pet_id", r.PetID),
		zap.String("requester_id", r.RequesterID),
	)
	return r, nil
}

// Update edita el formulario mientras la solicitud está en pending
// (solicitante o staff).
func (s *Service) Update(ctx context.Context, actor auth.Principal, id string, in FormInput) (Request, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if err := auth.RequireOwnerOrStaff(actor, r.RequesterID); err != nil {
		return Request{}, err
	}
	if r.Status != StatusPending {
		return Request{}, apperrors.ErrBadState
	}

	form, err := in.normalize()
	if err != nil {
		return Request{}, err
	}

	r.Motivation = form.Motivation
	r.HomeType = form.HomeType
	r.HasOtherPets = form.HasOtherPets
	r.OtherPetsDescription = form.OtherPetsDescription
	r.UpdatedAt = s.now()

	if err := s.repo.UpdatePending(ctx, r); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Delete (solicitante o staff), en cualquier estado. Nunca toca la mascota.
func (s *Service) Delete(ctx context.Context, actor auth.Principal, id string) error {
	r, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.RequireOwnerOrStaff(actor, r.RequesterID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, r.ID)
}

type ApproveResult struct {
	Request Request
	// Applied=false: la solicitud no estaba en pending y nada cambió.
	Applied bool
	// Message solo se llena cuando Applied.
	Message string
}

// Approve (solo staff). Si la solicitud está en pending pasa a approved y la
// mascota a adopted juntas; si no, devuelve el estado actual sin error.
// Las demás solicitudes pendientes de la misma mascota quedan como están.
func (s *Service) Approve(ctx context.Context, actor auth.Principal, id string) (ApproveResult, error) {
	if err := auth.RequireStaff(actor); err != nil {
		return ApproveResult{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ApproveResult{}, apperrors.ErrNotFound
	}

	r, applied, err := s.repo.ApprovePending(ctx, id, s.now())
	if err != nil {
		return ApproveResult{}, err
	}
	if !applied {
		return ApproveResult{Request: r}, nil
	}

	s.recordTransition(r, StatusApproved, actor)

	res := ApproveResult{Request: r, Applied: true}
	pet, err := s.pets.GetByID(ctx, r.PetID)
	if err != nil {
		// La aprobación ya quedó aplicada; solo falta el nombre para el mensaje.
		s.log.Warn("approved request pet lookup failed", zap.String("pet_id", r.PetID), zap.Error(err))
		return res, nil
	}
	res.Message = ApprovalMessage(pet.Name)
	return res, nil
}

// ApprovalMessage es la confirmación que ve el usuario tras aprobar.
func ApprovalMessage(petName string) string {
	return fmt.Sprintf("Adoption request for %s has been approved!", petName)
}

// Reject (solo staff): pending -> rejected, no-op en otro estado.
// No tiene efecto sobre la mascota.
func (s *Service) Reject(ctx context.Context, actor auth.Principal, id string) (Request, bool, error) {
	return s.transition(ctx, actor, id, StatusPending, StatusRejected)
}

// Complete (solo staff): approved -> completed, no-op en otro estado.
// Es una acción administrativa; no se expone por HTTP.
func (s *Service) Complete(ctx context.Context, actor auth.Principal, id string) (Request, bool, error) {
	return s.transition(ctx, actor, id, StatusApproved, StatusCompleted)
}

func (s *Service) transition(ctx context.Context, actor auth.Principal, id string, from, to Status) (Request, bool, error) {
	if err := auth.RequireStaff(actor); err != nil {
		return Request{}, false, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Request{}, false, apperrors.ErrNotFound
	}

	r, applied, err := s.repo.TransitionStatus(ctx, id, from, to, s.now())
	if err != nil {
		return Request{}, false, err
	}
	if applied {
		s.recordTransition(r, to, actor)
	}
	return r, applied, nil
}

// Get: solo el solicitante o staff la ven. Para el resto no existe.
func (s *Service) Get(ctx context.Context, actor auth.Principal, id string) (Request, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if !auth.CanModify(actor, r.RequesterID) {
		return Request{}, apperrors.ErrNotFound
	}
	return r, nil
}

// List: staff ve todas; el resto solo las propias.
func (s *Service) List(ctx context.Context, actor auth.Principal, filter ListFilter) ([]Request, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}
	if !actor.IsStaff {
		filter.RequesterID = actor.UserID
	}
	filter.PetID = strings.TrimSpace(filter.PetID)
	for _, st := range filter.Statuses {
		if !st.Valid() {
			return nil, apperrors.ErrInvalidInput
		}
	}
	return s.repo.List(ctx, filter)
}

// ListByRequester sin chequeo de actor; lo usan las proyecciones que ya
// resolvieron quién puede ver qué.
func (s *Service) ListByRequester(ctx context.Context, requesterID string, statuses ...Status) ([]Request, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.List(ctx, ListFilter{RequesterID: requesterID, Statuses: statuses})
}

func (s *Service) CountsByPet(ctx context.Context, petIDs []string) (map[string]Counts, error) {
	if len(petIDs) == 0 {
		return map[string]Counts{}, nil
	}
	return s.repo.CountsByPet(ctx, petIDs)
}

// CountByStatus cuenta solicitudes en un estado (p. ej. adopciones aprobadas).
func (s *Service) CountByStatus(ctx context.Context, st Status) (int, error) {
	if !st.Valid() {
		return 0, apperrors.ErrInvalidInput
	}
	items, err := s.repo.List(ctx, ListFilter{Statuses: []Status{st}})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Service) load(ctx context.Context, id string) (Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Request{}, apperrors.ErrNotFound
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Request{}, apperrors.ErrNotFound
		}
		return Request{}, err
	}
	return r, nil
}

func (s *Service) recordTransition(r Request, to Status, actor auth.Principal) {
	s.log.Info("adoption request transitioned",
		zap.String("request_id", r.ID),
		zap.String("pet_id", r.PetID),
		zap.String("to", string(to)),
		zap.String("actor_id", actor.UserID),
	)
	if s.recorder != nil {
		s.recorder.RecordTransition(string(to))
	}
}
