package memory

import (
	"sync"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/breeds"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/domain/reviews"
)

// Store es el backend en memoria (dev/tests). Todos los repos comparten el
// mismo lock: así la aprobación (solicitud + mascota) es una sola sección
// crítica y las reglas entre entidades (unicidad, cascadas, protect) se
// chequean sobre un estado consistente.
type Store struct {
	mu sync.RWMutex

	breeds   map[string]breeds.Breed
	pets     map[string]pets.Pet
	requests map[string]adoptions.Request
	reviews  map[string]reviews.Review
	profiles map[string]profiles.Profile
}

func NewStore() *Store {
	return &Store{
		breeds:   make(map[string]breeds.Breed),
		pets:     make(map[string]pets.Pet),
		requests: make(map[string]adoptions.Request),
		reviews:  make(map[string]reviews.Review),
		profiles: make(map[string]profiles.Profile),
	}
}

func (s *Store) Breeds() breeds.Repository       { return &breedRepo{s: s} }
func (s *Store) Pets() pets.Repository           { return &petRepo{s: s} }
func (s *Store) Adoptions() adoptions.Repository { return &adoptionRepo{s: s} }
func (s *Store) Reviews() reviews.Repository     { return &reviewRepo{s: s} }
func (s *Store) Profiles() profiles.Repository   { return &profileRepo{s: s} }
