package api

import (
	"context"

	"github.com/gorilla/mux"

	"github.com/pathfinderhq/pathfinder/internal/cache"
	"github.com/pathfinderhq/pathfinder/internal/chat"
	"github.com/pathfinderhq/pathfinder/internal/config"
	"github.com/pathfinderhq/pathfinder/internal/db"
	"github.com/pathfinderhq/pathfinder/internal/repository/sqlite"
	"github.com/pathfinderhq/pathfinder/internal/validate"
	"github.com/pathfinderhq/pathfinder/pkg/ollama"
)

// Deps are the shared clients constructed in main. Cache and Ollama may be
// nil; the handlers degrade accordingly.
type Deps struct {
	DB     *db.DB
	Cache  *cache.ListCache
	Ollama *ollama.Client
}

func SetupRoutes(ctx context.Context, cfg *config.Config, version, buildTime string, deps Deps) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(deps.DB, logger)

	validator, err := validate.NewValidator(ctx, repo)
	if err != nil {
		return nil, err
	}

	fallback := &chat.LocalResponder{Resources: repo}
	responder := chat.Responder(fallback)
	if deps.Ollama != nil {
		responder = &chat.ModelResponder{
			Client:   deps.Ollama,
			Model:    cfg.Engine.Model,
			Fallback: fallback,
			Logger:   logger,
		}
	}

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	resourcesHandler := NewResourcesHandler(repo, validator, deps.Cache)
	jobsHandler := NewJobsHandler(repo, validator, deps.Cache)
	chatHandler := NewChatHandler(responder)
	resumeHandler := NewResumeHandler(deps.Ollama, cfg.Engine.Model, validator)
	validationHandler := NewValidationHandler(validator, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// Read endpoints
	r.HandleFunc("/v1/resources", resourcesHandler.List).Methods("GET")
	r.HandleFunc("/v1/resources/nearby/{lat}/{lng}", resourcesHandler.Nearby).Methods("GET")
	r.HandleFunc("/v1/resources/{id}", resourcesHandler.Get).Methods("GET")
	r.HandleFunc("/v1/jobs", jobsHandler.List).Methods("GET")
	r.HandleFunc("/v1/jobs/nearby/{lat}/{lng}", jobsHandler.Nearby).Methods("GET")
	r.HandleFunc("/v1/jobs/{id}", jobsHandler.Get).Methods("GET")

	// Guidance endpoints
	r.HandleFunc("/v1/chat", chatHandler.Chat).Methods("POST")
	r.HandleFunc("/v1/resume/generate", resumeHandler.Generate).Methods("POST")
	r.HandleFunc("/v1/resume/template", resumeHandler.Template).Methods("GET")

	// Protected write endpoints
	writes := r.PathPrefix("/v1").Subrouter()
	writes.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	writes.HandleFunc("/resources", resourcesHandler.Create).Methods("POST")
	writes.HandleFunc("/resources/{id}", resourcesHandler.Update).Methods("PUT")
	writes.HandleFunc("/resources/{id}", resourcesHandler.Delete).Methods("DELETE")
	writes.HandleFunc("/jobs", jobsHandler.Create).Methods("POST")
	writes.HandleFunc("/jobs/{id}", jobsHandler.Update).Methods("PUT")
	writes.HandleFunc("/jobs/{id}", jobsHandler.Delete).Methods("DELETE")
	writes.HandleFunc("/validation/reload", validationHandler.Reload).Methods("POST")
	writes.HandleFunc("/validation/schemas", validationHandler.Upsert).Methods("PUT")

	return r, nil
}
