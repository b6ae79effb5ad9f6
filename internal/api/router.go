package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"jdbc-bridge/internal/config"
	"jdbc-bridge/internal/middleware"
)

// NewRouter assembles the HTTP router: request IDs, panic recovery, CORS and
// per-client rate limiting around the /v1 API.
func NewRouter(cfg *config.Config, h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Route("/resources", func(r chi.Router) {
			r.Post("/", h.CreateResource)
			r.Get("/", h.ListResources)
			r.Get("/{name}", h.GetResource)
			r.Delete("/{name}", h.DeleteResource)
		})
		r.Post("/descriptors", h.ResolveDescriptor)
	})

	return r
}
