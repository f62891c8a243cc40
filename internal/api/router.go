package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/townsquare/community/docs"
	"github.com/townsquare/community/internal/api/handler"
	"github.com/townsquare/community/internal/api/middleware"
	"github.com/townsquare/community/internal/core/domain"
	"github.com/townsquare/community/internal/core/ports"
)

// Services are the use cases the router exposes.
type Services struct {
	Gate  ports.Gate
	Auth  ports.AuthService
	Posts ports.PostService
	Users ports.UserService
	Admin ports.AdminService
}

// Options tune the transport. Zero values select production defaults.
type Options struct {
	Log zerolog.Logger
	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.Check
	// Registerer and Gatherer back the HTTP metrics and /metrics.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	// BodyLimit caps request bodies, e.g. "1M".
	BodyLimit string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.BodyLimit == "" {
		opts.BodyLimit = "1M"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echomiddleware.BodyLimit(opts.BodyLimit))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "community",
		Registerer: opts.Registerer,
	}))

	// --- Operability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authn := middleware.Auth(svc.Gate)
	adminOnly := middleware.RequireRole(svc.Gate, domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(svc.Auth)
	postHandler := handler.NewPostHandler(svc.Posts)
	userHandler := handler.NewUserHandler(svc.Users)
	adminHandler := handler.NewAdminHandler(svc.Admin)

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout, authn)

	// --- Posts ---
	api.GET("/posts", postHandler.List)
	api.POST("/posts", postHandler.Create, authn)
	api.GET("/posts/user/:userId", postHandler.ListByUser)
	api.POST("/posts/:id/like", postHandler.ToggleLike, authn)
	api.GET("/posts/:id/like-status", postHandler.LikeStatus, authn)

	// --- Users ---
	api.GET("/users/profile", userHandler.Profile, authn)
	api.PUT("/users/profile", userHandler.UpdateProfile, authn)
	api.GET("/users/:id", userHandler.Get)

	// --- Admin ---
	admin := api.Group("/admin", authn, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:userId", adminHandler.DeleteUser)
	admin.DELETE("/posts/:postId", adminHandler.DeletePost)
	admin.GET("/stats", adminHandler.Stats)
	admin.PUT("/users/:userId/promote", adminHandler.Promote)
	admin.PUT("/users/:userId/demote", adminHandler.Demote)
	admin.GET("/users/:userId/posts", adminHandler.UserPosts)

	return e
}
