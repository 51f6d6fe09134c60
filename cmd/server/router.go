package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/vendify/vendify-api/internal/api"
	apimiddleware "github.com/vendify/vendify-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.RequestID)
	r.Use(apimiddleware.Recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORS.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(
		app.config.RateLimit.Max,
		time.Duration(app.config.RateLimit.WindowSeconds)*time.Second,
	))

	clientHandler := api.NewClientHandler(app.clientStore, app.logger)
	productHandler := api.NewProductHandler(app.productStore, app.logger)
	saleHandler := api.NewSaleHandler(app.saleStore, app.logger)
	healthHandler := api.NewHealthHandler(app.config)

	r.Route("/clientes", func(r chi.Router) {
		r.Get("/", clientHandler.List)
		r.Post("/", clientHandler.Create)
		r.Get("/{id}", clientHandler.Get)
		r.Put("/{id}", clientHandler.Update)
		r.Delete("/{id}", clientHandler.Delete)
		r.Post("/{id}/restore", clientHandler.Restore)
	})

	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)
		r.Get("/{id}", productHandler.Get)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
		r.Post("/{id}/restore", productHandler.Restore)
	})

	r.Route("/vendas", func(r chi.Router) {
		r.Get("/", saleHandler.List)
		r.Post("/", saleHandler.Create)
		r.Get("/{id}", saleHandler.Get)
		r.Put("/{id}", saleHandler.Update)
		r.Delete("/{id}", saleHandler.Delete)
		r.Post("/{id}/restore", saleHandler.Restore)
	})

	r.Get("/health", healthHandler.Health)
	r.Get("/", api.Banner)
	r.Get("/docs", api.Docs)
	r.Get("/docs.json", api.DocsJSON)

	r.NotFound(api.NotFound)

	return r
}
