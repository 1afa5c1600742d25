package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ridehail/admin-api/docs"
	"github.com/ridehail/admin-api/internal/api/handler"
	"github.com/ridehail/admin-api/internal/api/middleware"
	"github.com/ridehail/admin-api/internal/auth"
	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

// Services bundles the use-case implementations the router exposes.
type Services struct {
	Auth    ports.AuthService
	Trips   ports.TripService
	Riders  ports.RiderService
	Drivers ports.DriverService
	Admin   ports.AdminService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svcs Services, tokens *auth.TokenService, mongoClient *mongo.Client, redisClient *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ridehail"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(log)

	authRequired := middleware.Auth(tokens, log)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(svcs.Auth)
	tripHandler := handler.NewTripHandler(svcs.Trips)
	riderHandler := handler.NewRiderHandler(svcs.Riders)
	driverHandler := handler.NewDriverHandler(svcs.Drivers)
	adminHandler := handler.NewAdminHandler(svcs.Admin)
	healthHandler := handler.NewHealthHandler(mongoClient, redisClient)

	// --- Public surface ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- Any authenticated user ---
	trips := e.Group("/api/trips", authRequired)
	trips.GET("", tripHandler.List)
	trips.GET("/:id", tripHandler.Get)
	trips.POST("", tripHandler.Create)
	trips.PUT("/:id", tripHandler.Update)
	trips.DELETE("/:id", tripHandler.Delete)

	// --- Admin only ---
	riders := e.Group("/api/riders", authRequired, adminOnly)
	riders.GET("", riderHandler.List)
	riders.GET("/:id", riderHandler.Get)
	riders.POST("", riderHandler.Create)
	riders.PUT("/:id", riderHandler.Update)
	riders.DELETE("/:id", riderHandler.Delete)

	drivers := e.Group("/api/drivers", authRequired, adminOnly)
	drivers.GET("", driverHandler.List)
	drivers.GET("/:id", driverHandler.Get)
	drivers.POST("", driverHandler.Create)
	drivers.PUT("/:id", driverHandler.Update)
	drivers.DELETE("/:id", driverHandler.Delete)

	admin := e.Group("/api/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/audit", adminHandler.ListAudit)
	admin.GET("/trips", adminHandler.ListTrips)
	admin.GET("/riders", adminHandler.ListRiders)
	admin.GET("/drivers", adminHandler.ListDrivers)

	return e
}
