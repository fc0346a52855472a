package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bookstore/bookstore-api/docs"
	"github.com/bookstore/bookstore-api/internal/api/handler"
	"github.com/bookstore/bookstore-api/internal/api/middleware"
	"github.com/bookstore/bookstore-api/internal/core/service"
	"github.com/bookstore/bookstore-api/internal/infrastructure/config"
	mongodb "github.com/bookstore/bookstore-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookstore/bookstore-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	userService := service.NewUserService(userRepo, log)
	catalogService := service.NewCatalogService(bookRepo, log)
	orderService := service.NewOrderService(orderRepo, userRepo, log)
	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handler.NewAuthHandler(userService, authService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Identity first, then the policy gate: every route below is checked
	// against the declarative table before its handler runs.
	e.Use(middleware.Auth(cfg.JWTSecret, denylist))
	e.Use(middleware.Gate(middleware.DefaultPolicy()))

	// --- Auth / account ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/account", userHandler.Account)
	e.GET("/user", userHandler.CurrentUser)

	// --- Catalog ---
	e.POST("/books", bookHandler.Create)
	e.PUT("/books", bookHandler.Update)
	e.GET("/books", bookHandler.List)
	e.GET("/books/:id", bookHandler.Get)
	e.DELETE("/books/:id", bookHandler.Delete)

	// --- Orders ---
	e.POST("/orders", orderHandler.Create)
	e.PUT("/orders", orderHandler.Replace)
	e.GET("/orders", orderHandler.List)
	e.GET("/orders/:id", orderHandler.Get)
	e.DELETE("/orders/:id", orderHandler.Delete)
	e.GET("/users/orders", orderHandler.ListByUser)
	e.GET("/user/orders", orderHandler.ListOwn)

	// --- Users ---
	e.POST("/users", userHandler.Create)
	e.PUT("/users", userHandler.Update)
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Observability ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
