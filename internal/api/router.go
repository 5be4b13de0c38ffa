package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/ymestates/realty/internal/api/handlers"
	"github.com/ymestates/realty/internal/api/middleware"
	"github.com/ymestates/realty/internal/auth"
	"github.com/ymestates/realty/internal/database/models"
	"github.com/ymestates/realty/internal/storage"
	"gorm.io/gorm"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	AuthService    *auth.Service
	GoogleService  *auth.GoogleService
	Storage        storage.Storage
	AsynqClient    *asynq.Client
	FrontendURL    string
	AllowedOrigins []string // CORS allowed origins
	RateLimitReqs  int      // general API requests per window
	RateLimitAuth  int      // login/register requests per window
	RateLimitSecs  int      // window in seconds
}

// NewRouter builds the route table once at startup; it is immutable after
// that.
func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	if cfg.RateLimitReqs > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitReqs, cfg.RateLimitSecs))
	}

	// CORS - restrict to configured origins, or allow localhost in development
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5500", "http://localhost:5011"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Redis)
	authHandler := handlers.NewAuthHandler(cfg.AuthService, cfg.GoogleService, cfg.FrontendURL)
	propertyHandler := handlers.NewPropertyHandler(cfg.DB)
	contactHandler := handlers.NewContactHandler(cfg.DB, cfg.AsynqClient, cfg.Logger)
	inquiryHandler := handlers.NewInquiryHandler(cfg.DB, cfg.AsynqClient, cfg.Logger)
	teamHandler := handlers.NewTeamHandler(cfg.DB)
	socialsHandler := handlers.NewSocialsHandler(cfg.DB)
	uploadHandler := handlers.NewUploadHandler(cfg.Storage)

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints, with a tighter rate limit
		r.Group(func(r chi.Router) {
			if cfg.RateLimitAuth > 0 {
				r.Use(middleware.RateLimit(cfg.RateLimitAuth, cfg.RateLimitSecs))
			}
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})
		r.Get("/auth/google", authHandler.GoogleLogin)
		r.Get("/auth/google/callback", authHandler.GoogleCallback)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTService))
			r.Get("/me", authHandler.Me)
		})

		// Properties: reads are public, writes need a team or admin account
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandler.List)
			r.Get("/featured", propertyHandler.Featured)
			r.Get("/{id}", propertyHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWTService))
				r.Use(middleware.RequireRole(cfg.DB, models.RoleTeam, models.RoleAdmin))
				r.Post("/", propertyHandler.Create)
				r.Put("/{id}", propertyHandler.Update)
				r.Delete("/{id}", propertyHandler.Delete)
			})
		})

		// Contact messages: public submit, admin management
		r.Route("/contact", func(r chi.Router) {
			r.Post("/", contactHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWTService))
				r.Use(middleware.RequireRole(cfg.DB, models.RoleAdmin))
				r.Get("/", contactHandler.List)
				r.Put("/{id}", contactHandler.UpdateStatus)
				r.Delete("/{id}", contactHandler.Delete)
			})
		})

		// Inquiries: anyone may submit; a valid token links the inquiry
		r.Route("/inquiries", func(r chi.Router) {
			r.With(middleware.OptionalAuth(cfg.JWTService)).Post("/", inquiryHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWTService))
				r.Use(middleware.RequireRole(cfg.DB, models.RoleAdmin))
				r.Get("/", inquiryHandler.List)
				r.Put("/{id}", inquiryHandler.UpdateStatus)
			})
		})

		// Team page entries
		r.Route("/team", func(r chi.Router) {
			r.Get("/", teamHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWTService))
				r.Use(middleware.RequireRole(cfg.DB, models.RoleTeam, models.RoleAdmin))
				r.Post("/", teamHandler.Create)
				r.Put("/{id}", teamHandler.Update)
				r.Delete("/{id}", teamHandler.Delete)
			})
		})

		// Social links singleton
		r.Route("/socials", func(r chi.Router) {
			r.Get("/", socialsHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWTService))
				r.Use(middleware.RequireRole(cfg.DB, models.RoleTeam, models.RoleAdmin))
				r.Post("/", socialsHandler.Upsert)
			})
		})

		// Image upload
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTService))
			r.Use(middleware.RequireRole(cfg.DB, models.RoleTeam, models.RoleAdmin))
			r.Post("/upload", uploadHandler.Upload)
		})
	})

	// Locally stored uploads are served statically
	if local, ok := cfg.Storage.(*storage.Local); ok {
		fileServer := http.FileServer(http.Dir(local.Dir()))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))
	}

	return &Router{r}
}
