package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/precinct-io/case-tracker/internal/api/handler"
	"github.com/precinct-io/case-tracker/internal/api/middleware"
	"github.com/precinct-io/case-tracker/internal/api/render"
	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// RouterConfig carries everything the router needs; no globals.
type RouterConfig struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Cases    ports.CaseService
	Sessions ports.SessionService

	SessionTTL    time.Duration
	SecureCookies bool

	// Mongo and Redis back the readiness probe only.
	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("casetracker"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth, cfg.Sessions, cfg.SessionTTL, cfg.SecureCookies)
	userHandler := handler.NewUserHandler(cfg.Users)
	caseHandler := handler.NewCaseHandler(cfg.Cases)

	loadActor := middleware.LoadActor(cfg.Sessions)
	requireActor := middleware.RequireActor(cfg.Sessions)
	detectiveOrBoss := middleware.RequireRole(domain.RoleDetective, domain.RoleBoss)
	bossOnly := middleware.RequireRole(domain.RoleBoss)

	// --- Public routes (aware of a logged-in visitor, never requiring one) ---
	public := e.Group("", loadActor)
	public.GET("/login", authHandler.LoginForm)
	public.POST("/login", authHandler.Login)
	public.GET("/register_guest", authHandler.RegisterGuestForm)
	public.POST("/register_guest", authHandler.RegisterGuest)
	public.GET("/register_detective", authHandler.RegisterDetectiveForm)
	public.POST("/register_detective", authHandler.RegisterDetective)

	// --- Authenticated routes ---
	authed := e.Group("", requireActor)
	authed.GET("/", caseHandler.Home)
	authed.GET("/logout", authHandler.Logout)

	authed.GET("/users", userHandler.List, detectiveOrBoss)
	authed.GET("/users/pending", userHandler.Pending, bossOnly)
	authed.GET("/users/:id", userHandler.Show)
	authed.POST("/users/:id", userHandler.Update)
	authed.GET("/users/delete/:id", userHandler.Delete)
	authed.POST("/users/delete/:id", userHandler.Delete)
	authed.GET("/users/:id/approved", userHandler.Approve)
	authed.POST("/users/:id/approved", userHandler.Approve)

	authed.GET("/case/new", caseHandler.NewForm, detectiveOrBoss)
	authed.POST("/case/new", caseHandler.Create, detectiveOrBoss)
	authed.GET("/case/:id", caseHandler.Show)
	authed.POST("/case/:id", caseHandler.Update)
	authed.GET("/case/delete/:id", caseHandler.Delete)
	authed.POST("/case/delete/:id", caseHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
