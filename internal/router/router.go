package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"inventory-rest-api/internal/handler"
	"inventory-rest-api/internal/metrics"
	"inventory-rest-api/internal/middleware"
	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/pipeline"
	"inventory-rest-api/pkg/apierror"
	"inventory-rest-api/pkg/response"
)

// Config holds the configuration for creating a router.
type Config struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	Sessions       pipeline.SessionVerifier
	CookieName     string
	AllowedOrigins []string

	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	InventoryHandler *handler.InventoryHandler
	CategoryHandler  *handler.CategoryHandler
	ItemHandler      *handler.ItemHandler
	OperationHandler *handler.OperationHandler
	UserHandler      *handler.UserHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, apierror.NotFound("Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, &apierror.Error{
			StatusCode: http.StatusMethodNotAllowed,
			Code:       "METHOD_NOT_ALLOWED",
			Message:    "Method not allowed",
		})
	})

	// PUBLIC routes (no auth required)
	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.Health)
		r.Get("/ready", cfg.HealthHandler.Ready)
		r.Get("/status", cfg.HealthHandler.Status)
	}
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	// Gate lists, in order: authentication, role, then body validation.
	v := pipeline.NewValidator()
	public := pipeline.New()
	session := pipeline.New(pipeline.Authenticate(cfg.Sessions, cfg.CookieName))
	admin := session.With(pipeline.RequireRole(model.RoleAdmin))

	if h := cfg.AuthHandler; h != nil {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", public.With(pipeline.Validate[handler.RegisterRequest](v)).Handle(h.Register))
			r.Post("/login", public.With(pipeline.Validate[handler.LoginRequest](v)).Handle(h.Login))
			r.Post("/logout", pipeline.New(pipeline.Identify(cfg.Sessions, cfg.CookieName)).Handle(h.Logout))
			r.Get("/me", session.Handle(h.Me))
		})
	}

	if h := cfg.InventoryHandler; h != nil {
		r.Route("/inventories", func(r chi.Router) {
			r.Post("/", admin.With(pipeline.Validate[handler.CreateInventoryRequest](v)).Handle(h.Create))
			r.Get("/", session.Handle(h.List))
			r.Get("/{inventoryId}", admin.Handle(h.Get))
			r.Get("/{inventoryId}/items", session.Handle(h.ListItems))
			r.Get("/{inventoryId}/users", admin.Handle(h.ListUsers))
		})
	}

	if h := cfg.CategoryHandler; h != nil {
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", admin.With(pipeline.Validate[handler.CreateCategoryRequest](v)).Handle(h.Create))
			r.Get("/{inventoryId}", admin.Handle(h.List))
			r.Delete("/{categoryId}", admin.Handle(h.Delete))
		})
	}

	if h := cfg.ItemHandler; h != nil {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", admin.With(pipeline.Validate[handler.CreateItemRequest](v)).Handle(h.Create))
			r.Delete("/{itemId}", admin.Handle(h.Delete))
		})
	}

	if h := cfg.OperationHandler; h != nil {
		r.Route("/operations", func(r chi.Router) {
			r.Post("/", session.With(pipeline.Validate[handler.CreateOperationRequest](v)).Handle(h.Create))
			r.Route("/inventories/{inventoryId}", func(r chi.Router) {
				r.Get("/", admin.Handle(h.ListByInventory))
				r.Get("/items/{itemId}", admin.Handle(h.ListByItem))
				r.Get("/users/{userId}", admin.Handle(h.ListByUser))
				r.Get("/categories/{categoryId}", admin.Handle(h.ListByCategory))
			})
		})
	}

	if h := cfg.UserHandler; h != nil {
		r.Patch("/users/inventories", admin.With(pipeline.Validate[handler.RelationRequest](v)).Handle(h.ModifyRelation))
	}

	return r
}
