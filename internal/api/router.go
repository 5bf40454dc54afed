package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shopcore/commerce-api/docs"
	"github.com/shopcore/commerce-api/internal/api/handler"
	"github.com/shopcore/commerce-api/internal/api/middleware"
	"github.com/shopcore/commerce-api/internal/core/domain"
	"github.com/shopcore/commerce-api/internal/core/ports"
	"github.com/shopcore/commerce-api/internal/core/service"
	mongodb "github.com/shopcore/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopcore/commerce-api/internal/infrastructure/db/redis"
	"github.com/shopcore/commerce-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, activity ports.ActivitySink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	authService := service.NewAuthService(userRepo, issuer, activity, log)
	userService := service.NewUserService(userRepo, activity, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, catalogCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)

	authn := middleware.Auth(issuer, userRepo)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh-token", authHandler.Refresh)

	// --- Categories ---
	categories := e.Group("/v1/categories", authn)
	categories.POST("", categoryHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	categories.GET("", categoryHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleClient))
	categories.GET("/:id", categoryHandler.Get, middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleClient))
	categories.PATCH("/:id", categoryHandler.Update, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	categories.DELETE("/:id", categoryHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Products ---
	products := e.Group("/v1/products", authn)
	products.POST("", productHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	// Listing is open to any authenticated caller regardless of role.
	products.GET("", productHandler.List, middleware.RBAC())
	products.GET("/:id", productHandler.Get, middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleClient))
	products.PATCH("/:id", productHandler.Update, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	products.DELETE("/:id", productHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// Profile is available to any authenticated caller.
	e.GET("/v1/me", userHandler.Me, authn)

	// --- Users (admin only) ---
	users := e.Group("/v1/users", authn, middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PATCH("/:id/roles", userHandler.AssignRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
