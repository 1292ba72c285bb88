package breeds

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Post("/", createBreedHandler(svc))

		br.Get("/{breedID}", getBreedHandler(svc))
		br.Patch("/{breedID}", updateBreedHandler(svc))
		br.Delete("/{breedID}", deleteBreedHandler(svc))
	})
}

type createBreedRequest struct {
	Name        string  `json:"name"`
	Size        *Size   `json:"size"`
	Temperament *string `json:"temperament"`
	Description *string `json:"description"`
}

type updateBreedRequest struct {
	Name        *string `json:"name"`
	Size        *Size   `json:"size"`
	Temperament *string `json:"temperament"`
	Description *string `json:"description"`
}

type breedResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        Size      `json:"size"`
	Temperament string    `json:"temperament"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreedResponse(b))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// createBreedHandler godoc
// @Summary Crear (o recuperar) una raza
// @Description Solo staff. Si ya existe una raza con ese nombre exacto (tras trim) se devuelve la existente y se le aplican los detalles enviados.
// @Tags breeds
// @Accept json
// @Produce json
// @Param payload body createBreedRequest true "Raza"
// @Success 200 {object} breedResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /breeds [post]
func createBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req createBreedRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), p, req.Name, DetailsInput{
			Size:        req.Size,
			Temperament: req.Temperament,
			Description: req.Description,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toBreedResponse(b))
	}
}

func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "breedID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toBreedResponse(b))
	}
}

func updateBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req updateBreedRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Update(r.Context(), p, chi.URLParam(r, "breedID"), DetailsInput(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toBreedResponse(b))
	}
}

// deleteBreedHandler godoc
// @Summary Borrar una raza
// @Description Solo staff. Devuelve 409 mientras alguna mascota use la raza.
// @Tags breeds
// @Param breedID path string true "ID de la raza"
// @Success 204
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "conflict"
// @Router /breeds/{breedID} [delete]
func deleteBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}
		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "breedID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:          b.ID,
		Name:        b.Name,
		Size:        b.Size,
		Temperament: b.Temperament,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}
