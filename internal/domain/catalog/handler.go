package catalog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/domain/breeds"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/respond"
)

const statusSuccess = "success"

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/pets", apiListPetsHandler(petsSvc))
		ar.Get("/pets/{petID}", apiPetDetailHandler(svc))
		ar.Get("/breeds", apiListBreedsHandler(svc))
		ar.Get("/stats", apiStatsHandler(svc))
	})

	r.Get("/me/pets", myPetsHandler(svc))
}

type apiPetListResponse struct {
	Count   int                `json:"count"`
	Results []pets.PetResponse `json:"results"`
	Status  string             `json:"status"`
}

type breedInfo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Size        breeds.Size `json:"size"`
	Temperament string      `json:"temperament"`
	Description string      `json:"description"`
}

type posterInfo struct {
	ID         string `json:"id"`
	ProfileURL string `json:"profile_url,omitempty"`
}

type adoptionStats struct {
	TotalRequests int `json:"total_requests"`
	ApprovedCount int `json:"approved_count"`
	PendingCount  int `json:"pending_count"`
}

type reviewStats struct {
	Count         int      `json:"count"`
	AverageRating *float64 `json:"average_rating"`
}

type petDetailData struct {
	pets.PetResponse
	BreedInfo     breedInfo     `json:"breed_info"`
	PostedByInfo  *posterInfo   `json:"posted_by"` // tapa al posted_by plano de PetResponse
	AdoptionStats adoptionStats `json:"adoption_stats"`
	Reviews       reviewStats   `json:"reviews"`
}

type apiPetDetailResponse struct {
	Status string        `json:"status"`
	Data   petDetailData `json:"data"`
}

type apiBreed struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Size          breeds.Size `json:"size"`
	Temperament   string      `json:"temperament"`
	Description   string      `json:"description"`
	AvailablePets int         `json:"available_pets"`
	CreatedAt     time.Time   `json:"created_at"`
}

type apiBreedListResponse struct {
	Count   int        `json:"count"`
	Results []apiBreed `json:"results"`
	Status  string     `json:"status"`
}

type apiStatsResponse struct {
	Status         string             `json:"status"`
	FeaturedPets   []pets.PetResponse `json:"featured_pets"`
	TotalPets      int                `json:"total_pets"`
	TotalAdoptions int                `json:"total_adoptions"`
}

type myPetsResponse struct {
	Pets             []pets.PetResponse `json:"pets"`
	TotalPosted      int                `json:"total_posted"`
	TotalAdopted     int                `json:"total_adopted"`
	AdoptedPets      []pets.PetResponse `json:"adopted_pets"`
	TotalMyAdoptions int                `json:"total_my_adoptions"`
}

// apiListPetsHandler godoc
// @Summary Búsqueda de mascotas (JSON)
// @Description status (default available), gender, breed_id y search sobre nombre/raza/descripción. Sin paginar.
// @Tags api
// @Produce json
// @Param status query string false "available|pending|adopted|all"
// @Param gender query string false "male|female|unknown"
// @Param breed_id query string false "ID de raza"
// @Param search query string false "Texto libre"
// @Success 200 {object} apiPetListResponse
// @Failure 400 {string} string "invalid input"
// @Router /api/pets [get]
func apiListPetsHandler(petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := pets.ParseListFilter(r.URL.Query())
		if err != nil {
			respond.Error(w, err)
			return
		}
		items, err := petsSvc.List(r.Context(), filter)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, apiPetListResponse{
			Count:   len(items),
			Results: pets.ToResponses(items),
			Status:  statusSuccess,
		})
	}
}

// apiPetDetailHandler godoc
// @Summary Ficha de mascota (JSON)
// @Description Incluye raza, quién la publicó, estadísticas de solicitudes y reseñas. pending_count > 0 en una mascota adopted indica solicitudes que quedaron sin resolver.
// @Tags api
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} apiPetDetailResponse
// @Failure 404 {string} string "not found"
// @Router /api/pets/{petID} [get]
func apiPetDetailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.PetDetail(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		data := petDetailData{
			PetResponse: pets.ToResponse(d.Pet),
			BreedInfo: breedInfo{
				ID:          d.Breed.ID,
				Name:        d.Breed.Name,
				Size:        d.Breed.Size,
				Temperament: d.Breed.Temperament,
				Description: d.Breed.Description,
			},
			AdoptionStats: adoptionStats{
				TotalRequests: d.Counts.Total,
				ApprovedCount: d.Counts.Approved,
				PendingCount:  d.Counts.Pending,
			},
			Reviews: reviewStats{
				Count:         d.Reviews.Count,
				AverageRating: d.Reviews.Average,
			},
		}
		if d.Poster != nil {
			data.PostedByInfo = &posterInfo{ID: d.Poster.UserID}
			if d.Poster.ProfileID != "" {
				data.PostedByInfo.ProfileURL = "/profiles/" + d.Poster.ProfileID
			}
		}

		respond.JSON(w, http.StatusOK, apiPetDetailResponse{Status: statusSuccess, Data: data})
	}
}

func apiListBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.BreedsWithAvailability(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		out := make([]apiBreed, 0, len(items))
		for _, it := range items {
			out = append(out, apiBreed{
				ID:            it.Breed.ID,
				Name:          it.Breed.Name,
				Size:          it.Breed.Size,
				Temperament:   it.Breed.Temperament,
				Description:   it.Breed.Description,
				AvailablePets: it.AvailablePets,
				CreatedAt:     it.Breed.CreatedAt,
			})
		}
		respond.JSON(w, http.StatusOK, apiBreedListResponse{
			Count:   len(out),
			Results: out,
			Status:  statusSuccess,
		})
	}
}

func apiStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.HomeStats(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, apiStatsResponse{
			Status:         statusSuccess,
			FeaturedPets:   pets.ToResponses(st.Featured),
			TotalPets:      st.TotalAvailable,
			TotalAdoptions: st.TotalAdoptions,
		})
	}
}

// myPetsHandler godoc
// @Summary Mis mascotas
// @Description Las que publiqué (cualquier status) y las que adopté por solicitud aprobada.
// @Tags pets
// @Produce json
// @Success 200 {object} myPetsResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/pets [get]
func myPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Unauthenticated(w)
			return
		}
		mp, err := svc.MyPets(r.Context(), p.UserID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, myPetsResponse{
			Pets:             pets.ToResponses(mp.Posted),
			TotalPosted:      mp.TotalPosted,
			TotalAdopted:     mp.TotalAdopted,
			AdoptedPets:      pets.ToResponses(mp.Adopted),
			TotalMyAdoptions: len(mp.Adopted),
		})
	}
}
