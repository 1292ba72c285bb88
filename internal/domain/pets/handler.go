package pets

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Listado público (sin auth)
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name         string `json:"name"`
	Breed        string `json:"breed"`
	Age          int    `json:"age"`
	Description  string `json:"description"`
	HealthStatus string `json:"health_status"`
	Gender       Gender `json:"gender"`
	Status       Status `json:"status"` // solo staff
}

type updatePetRequest struct {
	Name         *string `json:"name"`
	Breed        *string `json:"breed"`
	Age          *int    `json:"age"`
	Description  *string `json:"description"`
	HealthStatus *string `json:"health_status"`
	Gender       *Gender `json:"gender"`
	Status       *Status `json:"status"`
}

type PetResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BreedID      string    `json:"breed_id"`
	Breed        string    `json:"breed"`
	Age          int       `json:"age"`
	Description  string    `json:"description"`
	HealthStatus string    `json:"health_status"`
	Status       Status    `json:"status"`
	Gender       Gender    `json:"gender"`
	PostedBy     string    `json:"posted_by,omitempty"`
	ArrivalDate  string    `json:"arrival_date"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type petListResponse struct {
	Count    int           `json:"count"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Results  []PetResponse `json:"results"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Público. Por defecto solo status=available; status=all quita el filtro. Paginado de a 12.
// @Tags pets
// @Produce json
// @Param status query string false "available|pending|adopted|all (separados por coma)"
// @Param gender query string false "male|female|unknown"
// @Param breed_id query string false "ID de raza"
// @Param breed query string false "Nombre de raza (contiene)"
// @Param q query string false "Texto libre sobre nombre, raza y descripción"
// @Param page query int false "Página (desde 1)"
// @Param page_size query int false "Tamaño de página (1-100)"
// @Success 200 {object} petListResponse
// @Failure 400 {string} string "invalid input"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter, err := ParseListFilter(q)
		if err != nil {
			respond.Error(w, err)
			return
		}
		page, pageSize, err := parsePage(q)
		if err != nil {
			respond.Error(w, err)
			return
		}
		filter.Limit = pageSize
		filter.Offset = (page - 1) * pageSize

		total, err := svc.Count(r.Context(), filter)
		if err != nil {
			respond.Error(w, err)
			return
		}
		items, err := svc.List(r.Context(), filter)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, petListResponse{
			Count:    total,
			Page:     page,
			PageSize: pageSize,
			Results:  ToResponses(items),
		})
	}
}

// createPetHandler godoc
// @Summary Publicar una mascota
// @Description Staff crea publicaciones curadas (puede fijar status). Un usuario autenticado auto-publica con status available.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req createPetRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		pet, err := svc.Create(r.Context(), p, CreateInput(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, ToResponse(pet))
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(pet))
	}
}

// updatePetHandler godoc
// @Summary Editar una mascota
// @Description Staff o quien la publicó. Solo staff puede cambiar status.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a cambiar"
// @Success 200 {object} PetResponse
// @Failure 400 {string} string "invalid input"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}

		var req updatePetRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		pet, err := svc.Update(r.Context(), p, chi.URLParam(r, "petID"), UpdateInput(req))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(pet))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}
		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "petID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ParseListFilter lee status/gender/breed_id/breed/q (o search) de la query.
// Sin status se listan solo las disponibles.
func ParseListFilter(q url.Values) (ListFilter, error) {
	f := ListFilter{
		BreedID:   strings.TrimSpace(q.Get("breed_id")),
		BreedName: strings.TrimSpace(q.Get("breed")),
		Query:     strings.TrimSpace(q.Get("q")),
	}
	if f.Query == "" {
		f.Query = strings.TrimSpace(q.Get("search"))
	}

	raw := strings.TrimSpace(q.Get("status"))
	switch raw {
	case "":
		f.Statuses = []Status{StatusAvailable}
	case "all":
	default:
		for _, part := range strings.Split(raw, ",") {
			st := Status(strings.TrimSpace(part))
			if !st.Valid() {
				return ListFilter{}, apperrors.ErrInvalidInput
			}
			f.Statuses = append(f.Statuses, st)
		}
	}

	if g := strings.TrimSpace(q.Get("gender")); g != "" {
		f.Gender = Gender(g)
		if !f.Gender.Valid() {
			return ListFilter{}, apperrors.ErrInvalidInput
		}
	}
	return f, nil
}

func parsePage(q url.Values) (page, pageSize int, err error) {
	page, pageSize = 1, DefaultPageSize
	if v := q.Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, apperrors.ErrInvalidInput
		}
	}
	if v := q.Get("page_size"); v != "" {
		pageSize, err = strconv.Atoi(v)
		if err != nil || pageSize < 1 || pageSize > MaxPageSize {
			return 0, 0, apperrors.ErrInvalidInput
		}
	}
	return page, pageSize, nil
}

func ToResponse(p Pet) PetResponse {
	return PetResponse{
		ID:           p.ID,
		Name:         p.Name,
		BreedID:      p.BreedID,
		Breed:        p.BreedName,
		Age:          p.Age,
		Description:  p.Description,
		HealthStatus: p.HealthStatus,
		Status:       p.Status,
		Gender:       p.Gender,
		PostedBy:     p.PostedBy,
		ArrivalDate:  p.ArrivalDate.Format("2006-01-02"),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}
