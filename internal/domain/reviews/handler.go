package reviews

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets/{petID}/reviews", listPetReviewsHandler(svc))
	r.Post("/pets/{petID}/reviews", createReviewHandler(svc))

	r.Route("/reviews", func(rr chi.Router) {
		rr.Get("/", listReviewsHandler(svc))
		rr.Get("/{reviewID}", getReviewHandler(svc))
		rr.Patch("/{reviewID}", updateReviewHandler(svc))
		rr.Delete("/{reviewID}", deleteReviewHandler(svc))
	})
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	AuthorID  string    `json:"author_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SummaryResponse struct {
	Count   int      `json:"count"`
	Average *float64 `json:"average_rating"`
}

type petReviewsResponse struct {
	Summary SummaryResponse  `json:"summary"`
	Results []ReviewResponse `json:"results"`
}

func listReviewsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

// listPetReviewsHandler godoc
// @Summary Reseñas de una mascota
// @Description Público. Incluye cantidad y promedio.
// @Tags reviews
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petReviewsResponse
// @Router /pets/{petID}/reviews [get]
func listPetReviewsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, petReviewsResponse{
			Summary: ToSummaryResponse(Summarize(items)),
			Results: ToResponses(items),
		})
	}
}

// createReviewHandler godoc
// @Summary Reseñar una mascota
// @Tags reviews
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body reviewRequest true "Reseña (rating 1-5)"
// @Success 201 {object} ReviewResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /pets/{petID}/reviews [post]
func createReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req reviewRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out, err := svc.Create(r.Context(), p, chi.URLParam(r, "petID"), Input(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, ToResponse(out))
	}
}

func getReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.GetByID(r.Context(), chi.URLParam(r, "reviewID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(out))
	}
}

func updateReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req reviewRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out, err := svc.Update(r.Context(), p, chi.URLParam(r, "reviewID"), Input(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(out))
	}
}

func deleteReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}
		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "reviewID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(r Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		PetID:     r.PetID,
		AuthorID:  r.AuthorID,
		Rating:    r.Rating,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToResponses(items []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for _, r := range items {
		out = append(out, ToResponse(r))
	}
	return out
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse(s)
}
