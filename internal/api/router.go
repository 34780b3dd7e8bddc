package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisdb "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/api/handler"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/api/middleware"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/ports"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/service"
	mongostore "github.com/BALUCHANDRAMANDRA/Backend-Web/internal/infrastructure/db/mongo"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/infrastructure/db/redis"
)

// Secrets carries the two signing secrets and the designated admin
// username, loaded once at startup and immutable afterwards.
type Secrets struct {
	AccessSecret  string
	RefreshSecret string
	AdminUsername string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redisdb.Client, secrets Secrets, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("adminpanel"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	employeeRepo := mongostore.NewEmployeeRepository(db)
	requestRepo := mongostore.NewRequestRepository(db)

	tokens := service.NewTokenService(secrets.AccessSecret, secrets.RefreshSecret)
	authService := service.NewAuthService(userRepo, tokens, secrets.AdminUsername, audit)
	employeeService := service.NewEmployeeService(employeeRepo)
	requestService := service.NewRequestService(requestRepo, redis.NewDedupChecker(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	requestHandler := handler.NewRequestHandler(requestService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/refresh-token", authHandler.Refresh)
	e.GET("/get-user", authHandler.CurrentUser, authRequired)

	// --- Employee administration ---
	e.POST("/create-employee", employeeHandler.Create, authRequired, adminOnly)
	e.GET("/get-employees", employeeHandler.List, authRequired, adminOnly)
	e.GET("/get-employee/:id", employeeHandler.Get)
	e.PUT("/update-employee/:id", employeeHandler.Update, authRequired, adminOnly)
	e.DELETE("/delete-employee/:id", employeeHandler.Delete, authRequired, adminOnly)

	// --- User requests ---
	e.POST("/requests", requestHandler.Submit, authRequired)
	e.GET("/user-requests", requestHandler.ListOwn, authRequired)
	e.GET("/admin-requests", requestHandler.ListAll, authRequired, adminOnly)
	e.PUT("/status/:id", requestHandler.UpdateStatus, authRequired, adminOnly)
	e.DELETE("/delete-request/:id", requestHandler.Delete, authRequired, adminOnly)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
