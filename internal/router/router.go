package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "pet-adoption/docs"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/breeds"
	"pet-adoption/internal/domain/catalog"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/domain/reviews"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/flash"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  *zap.Logger
	Flash   *flash.Store
	Metrics *metrics.Metrics
}

type repositories struct {
	breeds    breeds.Repository
	pets      pets.Repository
	adoptions adoptions.Repository
	reviews   reviews.Repository
	profiles  profiles.Repository
}

func newRepositories(db *sql.DB) repositories {
	if db != nil {
		return repositories{
			breeds:    pg.NewBreedsRepo(db),
			pets:      pg.NewPetsRepo(db),
			adoptions: pg.NewAdoptionsRepo(db),
			reviews:   pg.NewReviewsRepo(db),
			profiles:  pg.NewProfilesRepo(db),
		}
	}

	// Un solo store: todos los repos comparten el mismo lock.
	store := mem.NewStore()
	return repositories{
		breeds:    store.Breeds(),
		pets:      store.Pets(),
		adoptions: store.Adoptions(),
		reviews:   store.Reviews(),
		profiles:  store.Profiles(),
	}
}

func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fl := opts.Flash
	if fl == nil {
		fl = flash.New(flash.Options{Secret: "dev-session-secret"})
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/me/messages", fl.MessagesHandler())

	repos := newRepositories(opts.DB)

	// Services por módulo
	breedsSvc := breeds.NewService(repos.breeds)
	petsSvc := pets.NewService(repos.pets, breedsSvc)
	adoptionsSvc := adoptions.NewService(repos.adoptions, petsSvc, logger, m)
	reviewsSvc := reviews.NewService(repos.reviews)
	profilesSvc := profiles.NewService(repos.profiles)
	catalogSvc := catalog.NewService(petsSvc, breedsSvc, adoptionsSvc, reviewsSvc, profilesSvc)

	// Rutas por módulo. /pets va antes que las subrutas /pets/{petID}/...
	breeds.RegisterRoutes(r, breedsSvc)
	pets.RegisterRoutes(r, petsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc, fl)
	reviews.RegisterRoutes(r, reviewsSvc)
	profiles.RegisterRoutes(r, profilesSvc, reviewsSvc, adoptionsSvc)
	catalog.RegisterRoutes(r, catalogSvc, petsSvc)

	return r
}
