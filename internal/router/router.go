package router

import (
	"karigar-api/internal/handler"
	"karigar-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler          *handler.Handler
	UserHandler      *handler.UserHandler
	ProductHandler   *handler.ProductHandler
	ChatHandler      *handler.ChatHandler
	AnalyticsHandler *handler.AnalyticsHandler
	SettingsHandler  *handler.SettingsHandler
	ExportHandler    *handler.ExportHandler
	AdvisorHandler   *handler.AdvisorHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		if cfg.UserHandler != nil {
			r.Route("/user", func(r chi.Router) {
				r.Post("/", cfg.UserHandler.SetUser)
				r.Get("/", cfg.UserHandler.GetUser)
				r.Delete("/", cfg.UserHandler.Logout)
			})
		}

		if cfg.ProductHandler != nil {
			r.Route("/products", func(r chi.Router) {
				r.Post("/", cfg.ProductHandler.Create)
				r.Get("/", cfg.ProductHandler.List)
				r.Post("/image", cfg.ProductHandler.UploadImage)
				r.Patch("/{id}", cfg.ProductHandler.Update)
				r.Delete("/{id}", cfg.ProductHandler.Delete)
				r.Post("/{id}/views", cfg.ProductHandler.IncrementViews)
			})
		}

		if cfg.ChatHandler != nil {
			r.Route("/chats", func(r chi.Router) {
				r.Post("/", cfg.ChatHandler.Create)
				r.Get("/", cfg.ChatHandler.List)
				r.Delete("/", cfg.ChatHandler.Clear)
			})
		}

		if cfg.AnalyticsHandler != nil {
			r.Get("/analytics", cfg.AnalyticsHandler.Get)
		}

		if cfg.SettingsHandler != nil {
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", cfg.SettingsHandler.Get)
				r.Put("/{key}", cfg.SettingsHandler.Set)
			})
		}

		if cfg.ExportHandler != nil {
			r.Get("/export", cfg.ExportHandler.Export)
			r.Post("/import", cfg.ExportHandler.Import)
		}

		if cfg.AdvisorHandler != nil {
			r.Route("/advisor", func(r chi.Router) {
				r.Post("/listing", cfg.AdvisorHandler.Listing)
				r.Post("/tips", cfg.AdvisorHandler.Tips)
				r.Post("/replies", cfg.AdvisorHandler.Replies)
				r.Post("/chat", cfg.AdvisorHandler.Chat)
			})
		}
	})

	return r
}
