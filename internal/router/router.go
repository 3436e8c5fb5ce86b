package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	mem "granja-porcina/internal/adapters/storage/memory"
	pg "granja-porcina/internal/adapters/storage/postgres"
	lite "granja-porcina/internal/adapters/storage/sqlite"
	"granja-porcina/internal/domain/alimentaciones"
	"granja-porcina/internal/domain/clientes"
	"granja-porcina/internal/domain/porcinos"
	"granja-porcina/internal/domain/reportes"
	"granja-porcina/internal/middleware"
	"granja-porcina/internal/platform/logger"

	_ "granja-porcina/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, se usa como conexión Postgres. Si no, se
	// resuelve por env (DB_DSN, SQLITE_PATH) y como último recurso
	// in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	metrics := middleware.NewMetrics()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		clienteRepo clientes.Repository
		porcinoRepo porcinos.Repository
		alimRepo    alimentaciones.Repository
	)

	// Backend de almacenamiento: DB explícita > DB_DSN > SQLITE_PATH >
	// in-memory (dev y tests).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Error("postgres open failed, falling back", map[string]any{"error": err.Error()})
			}
		}
	}

	switch {
	case db != nil:
		if err := pg.EnsureSchema(context.Background(), db); err != nil {
			log.Error("ensure schema failed", map[string]any{"error": err.Error()})
		}
		clienteRepo = pg.NewClientesRepo(db)
		porcinoRepo = pg.NewPorcinosRepo(db)
		alimRepo = pg.NewAlimentacionesRepo(db)
		log.Info("storage backend", map[string]any{"backend": "postgres"})

	case os.Getenv("SQLITE_PATH") != "":
		sdb, err := lite.Open(os.Getenv("SQLITE_PATH"))
		if err != nil {
			log.Error("sqlite open failed, falling back to memory", map[string]any{"error": err.Error()})
			clienteRepo = mem.NewClientesRepo()
			porcinoRepo = mem.NewPorcinosRepo()
			alimRepo = mem.NewAlimentacionesRepo()
			break
		}
		clienteRepo = lite.NewClientesRepo(sdb)
		porcinoRepo = lite.NewPorcinosRepo(sdb)
		alimRepo = lite.NewAlimentacionesRepo(sdb)
		log.Info("storage backend", map[string]any{"backend": "sqlite"})

	default:
		clienteRepo = mem.NewClientesRepo()
		porcinoRepo = mem.NewPorcinosRepo()
		alimRepo = mem.NewAlimentacionesRepo()
		log.Info("storage backend", map[string]any{"backend": "memory"})
	}

	// Services por módulo. La cascada cliente->porcinos va repo a repo;
	// las validaciones de referencia de porcinos usan lookups puntuales.
	porcinosSvc := porcinos.NewService(porcinoRepo, clienteRepo, alimRepo)
	clientesSvc := clientes.NewService(clienteRepo, porcinoRepo)
	alimSvc := alimentaciones.NewService(alimRepo, porcinosSvc)
	reportesSvc := reportes.NewService(clienteRepo, porcinoRepo, alimRepo)

	// Rutas por módulo. Las de reporte van antes que /clientes/{id}
	// solo por legibilidad; chi resuelve el segmento fijo primero.
	reportes.RegisterRoutes(r, reportesSvc)
	clientes.RegisterRoutes(r, clientesSvc, porcinosSvc)
	porcinos.RegisterRoutes(r, porcinosSvc)
	alimentaciones.RegisterRoutes(r, alimSvc)

	return r
}
