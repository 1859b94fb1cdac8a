package api

import (
	"net/http"
	"time"

	"github.com/futig/fitplan-backend/internal/api/docs"
	generationapi "github.com/futig/fitplan-backend/internal/api/generation"
	libraryapi "github.com/futig/fitplan-backend/internal/api/library"
	"github.com/futig/fitplan-backend/internal/api/middleware"
	sessionapi "github.com/futig/fitplan-backend/internal/api/session"
	"github.com/futig/fitplan-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Generation *generationapi.Handler
	Session    *sessionapi.Handler
	Library    *libraryapi.Handler
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h Handlers, requestTimeout time.Duration, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "healthy"})
	})

	docs.RegisterRoutes(r)

	generationapi.RegisterRoutes(r, h.Generation)
	sessionapi.RegisterRoutes(r, h.Session)
	libraryapi.RegisterRoutes(r, h.Library)

	return r
}
