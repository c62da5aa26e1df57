package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/fantasy-football-service/internal/http/handlers"
	"github.com/preston-bernstein/fantasy-football-service/internal/http/middleware"
	"github.com/preston-bernstein/fantasy-football-service/internal/metrics"
)

// RouterOptions carries the cross-cutting pieces the router installs.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(opts.Logger, opts.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Route("/api/v1/team-data", func(r chi.Router) {
		r.Get("/all-teams", handler.AllTeams)
		r.Get("/{team}/{season}", handler.TeamStats)
	})
	return r
}
