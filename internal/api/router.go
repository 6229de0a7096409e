package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/innstack/hotel-system/docs"
	"github.com/innstack/hotel-system/internal/api/handler"
	"github.com/innstack/hotel-system/internal/api/middleware"
	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/service"
	redisstore "github.com/innstack/hotel-system/internal/infrastructure/db/redis"
	"github.com/innstack/hotel-system/pkg/logger"

	"github.com/innstack/hotel-system/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Room status changes are handed to events, which fans them out to the audit
// trail workers without blocking the request path.
func NewRouter(db *sql.DB, rdb *redis.Client, events service.EventSink, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hotel"))

	// --- Dependencies ---
	log := logger.Get()

	authRepo := postgres.NewAuthRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	tokenStore := redisstore.NewCheckinTokenStore(rdb)

	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	propertyService := service.NewPropertyService(propertyRepo, log)
	managerService := service.NewManagerService(propertyRepo, authRepo, log)
	roomService := service.NewRoomService(roomRepo, propertyRepo, events, log)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, propertyRepo, tokenStore, events, 24*time.Hour, log)
	orderService := service.NewOrderService(orderRepo, propertyRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	managerHandler := handler.NewManagerHandler(managerService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	orderHandler := handler.NewOrderHandler(orderService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authMiddleware := middleware.Auth(jwtSecret)
	staffOnly := middleware.RBAC(domain.RoleOwner, domain.RoleManager)
	ownerOnly := middleware.RBAC(domain.RoleOwner)

	// --- Public routes ---
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)

	// Check-in authenticates with the one-time token itself; the front-desk
	// kiosk that scans the QR code carries no user session.
	e.POST("/api/checkin", bookingHandler.Checkin)

	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	g := e.Group("/api", authMiddleware)

	g.POST("/properties", propertyHandler.Create, ownerOnly)
	g.GET("/properties", propertyHandler.List, staffOnly)
	g.GET("/properties/:id", propertyHandler.Get, staffOnly)
	g.PUT("/properties/:id", propertyHandler.Update, staffOnly)
	g.DELETE("/properties/:id", propertyHandler.Delete, ownerOnly)

	// Assignment writes live under the /users prefix for compatibility with
	// the front-office client; the read side sits with the other property
	// sub-resources.
	g.POST("/users/properties/:id/managers", managerHandler.Assign, ownerOnly)
	g.DELETE("/users/properties/:id/managers/:managerId", managerHandler.Unassign, ownerOnly)
	g.GET("/properties/:id/managers", managerHandler.ListManagers, staffOnly)

	g.POST("/properties/:id/rooms", roomHandler.Create, staffOnly)
	g.GET("/properties/:id/rooms", roomHandler.ListByProperty, staffOnly)
	g.PUT("/properties/:id/rooms/:roomId", roomHandler.Update, staffOnly)
	g.DELETE("/properties/:id/rooms/:roomId", roomHandler.Delete, staffOnly)

	g.GET("/rooms", roomHandler.ListAvailable)
	g.PATCH("/rooms/:id/status", roomHandler.SetStatus, staffOnly)

	g.POST("/bookings", bookingHandler.Create)
	g.POST("/bookings/:id/checkin-token", bookingHandler.IssueCheckinToken)
	g.POST("/bookings/:id/cancel", bookingHandler.Cancel)
	g.POST("/bookings/:id/checkout", bookingHandler.Checkout)

	g.GET("/properties/:id/menu", orderHandler.ListMenu)
	g.POST("/properties/:id/menu", orderHandler.CreateMenuItem, staffOnly)
	g.PUT("/properties/:id/menu/:itemId", orderHandler.UpdateMenuItem, staffOnly)
	g.DELETE("/properties/:id/menu/:itemId", orderHandler.DeleteMenuItem, staffOnly)

	g.POST("/properties/:id/orders", orderHandler.PlaceOrder)
	g.GET("/properties/:id/orders", orderHandler.ListOrders, staffOnly)
	g.PATCH("/orders/:id/status", orderHandler.SetOrderStatus, staffOnly)

	return e
}
