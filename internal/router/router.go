package router

import (
	"net/http"

	"canasta/internal/auth"
	"canasta/internal/handler"
	"canasta/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// The shopping list and item collections sit behind the caller identity
// middleware; users and products are plain catalogue CRUD.
func New(
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	listHandler *handler.ListHandler,
	itemHandler *handler.ItemHandler,
	resolver *auth.Resolver,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint (no caller identity required)
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.GetAll)
			r.Get("/{id}", userHandler.GetByID)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.Create)
			r.Get("/", productHandler.GetAll)
			r.Get("/{id}", productHandler.GetByID)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CallerIdentity(resolver, logger))

			r.Route("/shopping-lists", func(r chi.Router) {
				r.Post("/", listHandler.Create)
				r.Get("/", listHandler.GetAll)
				r.Get("/{id}", listHandler.GetByID)
				r.Put("/{id}", listHandler.Update)
				r.Delete("/{id}", listHandler.Delete)
			})

			r.Route("/shopping-list-items", func(r chi.Router) {
				r.Post("/", itemHandler.Create)
				r.Get("/", itemHandler.GetAll)
				r.Get("/{id}", itemHandler.GetByID)
				r.Put("/{id}", itemHandler.Update)
				r.Delete("/{id}", itemHandler.Delete)
			})
		})
	})

	return r
}
