package adoptions

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/respond"
)

// Flasher encola mensajes para el usuario (cookie de sesión).
type Flasher interface {
	Add(w http.ResponseWriter, r *http.Request, msg string) error
}

func RegisterRoutes(r chi.Router, svc *Service, flash Flasher) {
	// Crear solicitud sobre una mascota
	r.Post("/pets/{petID}/adoption-requests", createRequestHandler(svc))

	r.Route("/adoption-requests", func(ar chi.Router) {
		ar.Get("/", listRequestsHandler(svc))

		ar.Get("/{requestID}", getRequestHandler(svc))
		ar.Patch("/{requestID}", updateRequestHandler(svc))
		ar.Delete("/{requestID}", deleteRequestHandler(svc))

		// Transiciones (staff)
		ar.Post("/{requestID}/approve", approveRequestHandler(svc, flash))
		ar.Post("/{requestID}/reject", rejectRequestHandler(svc))
	})
}

type requestForm struct {
	Motivation           string `json:"motivation"`
	HomeType             string `json:"home_type"`
	HasOtherPets         bool   `json:"has_other_pets"`
	OtherPetsDescription string `json:"other_pets_description"`
}

type RequestResponse struct {
	ID                   string    `json:"id"`
	PetID                string    `json:"pet_id"`
	RequesterID          string    `json:"requester_id"`
	Status               Status    `json:"status"`
	Motivation           string    `json:"motivation"`
	HomeType             string    `json:"home_type"`
	HasOtherPets         bool      `json:"has_other_pets"`
	OtherPetsDescription string    `json:"other_pets_description"`
	RequestedAt          time.Time `json:"requested_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type transitionResponse struct {
	Request RequestResponse `json:"request"`
	Applied bool            `json:"applied"`
	Message string          `json:"message,omitempty"`
}

// createRequestHandler godoc
// @Summary Solicitar la adopción de una mascota
// @Description Una sola solicitud por persona y mascota. Queda en pending.
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body requestForm true "Formulario"
// @Success 201 {object} RequestResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "duplicate adoption request"
// @Router /pets/{petID}/adoption-requests [post]
func createRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req requestForm
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out, err := svc.Create(r.Context(), p, chi.URLParam(r, "petID"), FormInput(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, ToResponse(out))
	}
}

// listRequestsHandler godoc
// @Summary Listar solicitudes
// @Description Staff ve todas; el resto solo las propias.
// @Tags adoption-requests
// @Produce json
// @Param status query string false "pending|approved|rejected|completed (separados por coma)"
// @Param pet_id query string false "ID de la mascota"
// @Success 200 {array} RequestResponse
// @Failure 401 {string} string "unauthorized"
// @Router /adoption-requests [get]
func listRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		filter := ListFilter{PetID: r.URL.Query().Get("pet_id")}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				filter.Statuses = append(filter.Statuses, Status(strings.TrimSpace(part)))
			}
		}

		items, err := svc.List(r.Context(), p, filter)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

func getRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		out, err := svc.Get(r.Context(), p, chi.URLParam(r, "requestID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(out))
	}
}

// updateRequestHandler godoc
// @Summary Editar una solicitud
// @Description Solicitante o staff, solo mientras esté en pending (si no, 409).
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Param payload body requestForm true "Formulario completo"
// @Success 200 {object} RequestResponse
// @Failure 400 {string} string "invalid input"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "invalid state"
// @Router /adoption-requests/{requestID} [patch]
func updateRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req requestForm
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out, err := svc.Update(r.Context(), p, chi.URLParam(r, "requestID"), FormInput(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(out))
	}
}

func deleteRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}
		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "requestID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// approveRequestHandler godoc
// @Summary Aprobar una solicitud
// @Description Solo staff. pending -> approved y la mascota pasa a adopted. Sobre otro estado no cambia nada (applied=false). El mensaje de confirmación también queda en /me/messages.
// @Tags adoption-requests
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} transitionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /adoption-requests/{requestID}/approve [post]
func approveRequestHandler(svc *Service, flash Flasher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		res, err := svc.Approve(r.Context(), p, chi.URLParam(r, "requestID"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		// El flash va antes del body: la cookie viaja en los headers.
		if res.Message != "" && flash != nil {
			_ = flash.Add(w, r, res.Message)
		}

		respond.JSON(w, http.StatusOK, transitionResponse{
			Request: ToResponse(res.Request),
			Applied: res.Applied,
			Message: res.Message,
		})
	}
}

// rejectRequestHandler godoc
// @Summary Rechazar una solicitud
// @Description Solo staff. pending -> rejected, sin efecto sobre la mascota.
// @Tags adoption-requests
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} transitionResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /adoption-requests/{requestID}/reject [post]
func rejectRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		out, applied, err := svc.Reject(r.Context(), p, chi.URLParam(r, "requestID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, transitionResponse{Request: ToResponse(out), Applied: applied})
	}
}

func ToResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:                   r.ID,
		PetID:                r.PetID,
		RequesterID:          r.RequesterID,
		Status:               r.Status,
		Motivation:           r.Motivation,
		HomeType:             r.HomeType,
		HasOtherPets:         r.HasOtherPets,
		OtherPetsDescription: r.OtherPetsDescription,
		RequestedAt:          r.RequestedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func ToResponses(items []Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, ToResponse(r))
	}
	return out
}

