package router

import (
	"database/sql"
	"net/http"
	"time"

	"pet-hospitalization/internal/adapters/export/chart"
	mem "pet-hospitalization/internal/adapters/storage/memory"
	pg "pet-hospitalization/internal/adapters/storage/postgres"
	"pet-hospitalization/internal/domain/boxes"
	"pet-hospitalization/internal/domain/hospitalizations"
	"pet-hospitalization/internal/middleware"
	"pet-hospitalization/internal/platform/logger"
	"pet-hospitalization/internal/platform/metrics"

	_ "pet-hospitalization/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // opcional
	Metrics *metrics.Metrics // opcional; sin métricas no se monta /metrics

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Directory hospitalizations.Directory // opcional

	Horizon   time.Duration
	LateGrace time.Duration
}

// New arma el router y devuelve también el service de internación
// (el watcher de atrasos corre sobre el mismo service).
func New(opts Options) (http.Handler, *hospitalizations.Service) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.StaffContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		boxRepo boxes.Repository
		repos   hospitalizations.Repositories
	)
	if opts.DB != nil {
		boxRepo = pg.NewBoxesRepo(opts.DB)
		repos = pg.NewHospitalizationRepos(opts.DB)
	} else {
		boxRepo = mem.NewBoxRepo()
		repos = mem.NewHospitalizationRepos()
	}

	// Services por módulo
	boxesSvc := boxes.NewService(boxRepo)
	hospSvc := hospitalizations.NewService(repos, hospitalizations.Options{
		Boxes:     boxesSvc,
		Directory: opts.Directory,
		Logger:    log,
		Metrics:   opts.Metrics,
		Horizon:   opts.Horizon,
		LateGrace: opts.LateGrace,
	})

	// Rutas por módulo
	boxes.RegisterRoutes(r, boxesSvc)
	hospitalizations.RegisterRoutes(r, hospSvc, chart.XLSX{})

	return r, hospSvc
}

func NewRouter(opts Options) http.Handler {
	h, _ := New(opts)
	return h
}
