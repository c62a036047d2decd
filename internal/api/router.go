package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasknest/tasknest/internal/api/handler"
	"github.com/tasknest/tasknest/internal/api/middleware"
	"github.com/tasknest/tasknest/internal/core/domain"
	"github.com/tasknest/tasknest/internal/core/ports"
	"github.com/tasknest/tasknest/internal/core/service"
)

// Dependencies carries everything the router needs. Repositories are
// interfaces so tests can inject the in-memory implementations.
type Dependencies struct {
	Users     ports.UserRepository
	Todos     ports.TodoRepository
	Reminders ports.ReminderRepository
	Activity  ports.ActivityRepository
	Recorder  ports.ActivityRecorder

	JWTSecret string
	TokenTTL  time.Duration

	// AuthLimiter throttles the credential endpoints; nil disables throttling.
	AuthLimiter middleware.Limiter

	// Metrics attaches the Prometheus middleware and /metrics endpoint.
	// Disabled in tests to avoid duplicate collector registration.
	Metrics bool

	// Mongo and Redis feed the readiness probe; when either is nil only the
	// liveness probe is registered.
	Mongo *mongo.Database
	Redis *redis.Client

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if deps.Metrics {
		e.Use(echoprometheus.NewMiddleware("tasknest"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Services ---
	authService := service.NewAuthService(deps.Users, deps.JWTSecret, deps.TokenTTL)
	todoService := service.NewTodoService(deps.Todos, deps.Recorder, deps.Logger)
	reminderService := service.NewReminderService(deps.Reminders, deps.Recorder, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	reminderHandler := handler.NewReminderHandler(reminderService)
	activityHandler := handler.NewActivityHandler(deps.Activity)

	authMW := middleware.Auth(authService)

	// --- Auth routes ---
	auth := e.Group("/auth")
	if deps.AuthLimiter != nil {
		limited := middleware.RateLimit(deps.AuthLimiter, deps.Logger)
		auth.POST("/register", authHandler.Register, limited)
		auth.POST("/login", authHandler.Login, limited)
	} else {
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
	auth.GET("/me", authHandler.Me, authMW)

	// --- Todo routes ---
	todos := e.Group("/todos", authMW)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.PATCH("/:id", todoHandler.Update)
	todos.PATCH("/:id/toggle", todoHandler.Toggle)
	todos.DELETE("/:id", todoHandler.Delete)

	// --- Reminder routes ---
	reminders := e.Group("/reminders", authMW)
	reminders.GET("", reminderHandler.List)
	reminders.GET("/grouped", reminderHandler.ListGrouped)
	reminders.POST("", reminderHandler.Create)
	reminders.PATCH("/:id", reminderHandler.Update)
	reminders.PATCH("/:id/toggle", reminderHandler.Toggle)
	reminders.DELETE("/:id", reminderHandler.Delete)

	// --- Activity feed (admins only) ---
	e.GET("/activity", activityHandler.List, authMW, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		readiness := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	return e
}
