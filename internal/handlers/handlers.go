package handlers

import (
	"PassKeeper/internal/config"
	"PassKeeper/internal/middleware"
	"PassKeeper/internal/service"
	"PassKeeper/internal/token"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	vaultService *service.VaultService,
	tm *token.Manager,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, tm, logger)
	vaultHandler := NewVaultHandler(vaultService, logger)

	r.Get("/health", health)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Vault routes — только через шлюз аутентификации
	r.Route("/api/vault", func(r chi.Router) {
		r.Use(middleware.WithAuth(tm))

		r.Post("/entries", vaultHandler.Create)
		r.Get("/entries", vaultHandler.List)
		r.Put("/entries/{id}", vaultHandler.Update)
		r.Delete("/entries/{id}", vaultHandler.Delete)
		r.Post("/entries/{id}/reveal", vaultHandler.Reveal)
	})

	return &Handler{Router: r}
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
