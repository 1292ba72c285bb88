package profiles

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/reviews"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/respond"
	"pet-adoption/internal/ports/auth"
)

// Lo que el detalle de perfil muestra de otros módulos.
type (
	ReviewsByAuthor interface {
		ListByAuthor(ctx context.Context, authorID string) ([]reviews.Review, error)
	}
	RequestsByRequester interface {
		ListByRequester(ctx context.Context, requesterID string, statuses ...adoptions.Status) ([]adoptions.Request, error)
	}
)

func RegisterRoutes(r chi.Router, svc *Service, rv ReviewsByAuthor, ar RequestsByRequester) {
	r.Route("/profiles", func(pr chi.Router) {
		pr.Get("/", listProfilesHandler(svc))
		pr.Get("/{profileID}", getProfileHandler(svc, rv, ar))
	})

	r.Get("/me/profile", getMyProfileHandler(svc))
	r.Patch("/me/profile", updateMyProfileHandler(svc))
}

type updateProfileRequest struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Bio     *string `json:"bio"`
}

type profileResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	Bio        string    `json:"bio"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type profileDetailResponse struct {
	Profile profileResponse          `json:"profile"`
	Reviews []reviews.ReviewResponse `json:"reviews"`
	// Solo para el propio usuario o staff.
	AdoptionRequests []adoptions.RequestResponse `json:"adoption_requests,omitempty"`
}

func listProfilesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		out := make([]profileResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProfileResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getProfileHandler godoc
// @Summary Detalle de perfil
// @Description Público, con las reseñas del usuario. Las solicitudes de adopción solo las ve el propio usuario o staff.
// @Tags profiles
// @Produce json
// @Param profileID path string true "ID del perfil"
// @Success 200 {object} profileDetailResponse
// @Failure 404 {string} string "not found"
// @Router /profiles/{profileID} [get]
func getProfileHandler(svc *Service, rv ReviewsByAuthor, ar RequestsByRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "profileID"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		items, err := rv.ListByAuthor(r.Context(), p.UserID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		out := profileDetailResponse{
			Profile: toProfileResponse(p),
			Reviews: reviews.ToResponses(items),
		}

		viewer, _ := middleware.GetPrincipal(r.Context())
		if auth.CanModify(viewer, p.UserID) {
			reqs, err := ar.ListByRequester(r.Context(), p.UserID)
			if err != nil {
				respond.Error(w, err)
				return
			}
			out.AdoptionRequests = adoptions.ToResponses(reqs)
		}

		respond.JSON(w, http.StatusOK, out)
	}
}

func getMyProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}
		p, err := svc.GetOrCreateForUser(r.Context(), viewer.UserID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// updateMyProfileHandler godoc
// @Summary Editar mi perfil
// @Tags profiles
// @Accept json
// @Produce json
// @Param payload body updateProfileRequest true "Campos a cambiar"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /me/profile [patch]
func updateMyProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req updateProfileRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cur, err := svc.GetOrCreateForUser(r.Context(), viewer.UserID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		p, err := svc.Update(r.Context(), viewer, cur.ID, UpdateInput(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Phone:      p.Phone,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		ZipCode:    p.ZipCode,
		Bio:        p.Bio,
		IsVerified: p.IsVerified,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
