package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"arena/internal/handler"
	"arena/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	QuoteHandler    *handler.QuoteHandler
	BookingHandler  *handler.BookingHandler
	PaymentHandler  *handler.PaymentHandler
	ClientHandler   *handler.ClientHandler
	CoachHandler    *handler.CoachHandler
	PlayerHandler   *handler.PlayerHandler
	FacilityHandler *handler.FacilityHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Quote routes.
		v1.POST("/quotes", deps.QuoteHandler.Quote)

		// Booking routes.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.CreateBooking)
			bookings.GET("", deps.BookingHandler.GetAll)
			bookings.GET("/:id", deps.BookingHandler.GetBooking)
			bookings.GET("/:id/summary", deps.BookingHandler.GetSummary)
			bookings.GET("/:id/payments", deps.PaymentHandler.GetBookingPayments)
			bookings.POST("/:id/cancel", deps.BookingHandler.CancelBooking)
			bookings.POST("/:id/complete", deps.BookingHandler.CompleteBooking)
		}

		// Payment routes.
		payments := v1.Group("/payments")
		{
			payments.POST("", deps.PaymentHandler.RecordPayment)
			payments.GET("/:id", deps.PaymentHandler.GetPayment)
			payments.POST("/:id/confirm", deps.PaymentHandler.ConfirmPayment)
		}

		// Client routes.
		clients := v1.Group("/clients")
		{
			clients.POST("/register", deps.ClientHandler.Register)
			clients.GET("", deps.ClientHandler.GetAll)
			clients.GET("/:id", deps.ClientHandler.GetClient)
			clients.GET("/:id/players", deps.PlayerHandler.GetClientPlayers)
		}

		// Coach routes.
		coaches := v1.Group("/coaches")
		{
			coaches.POST("", deps.CoachHandler.Create)
			coaches.GET("", deps.CoachHandler.GetAll)
			coaches.GET("/:id", deps.CoachHandler.GetCoach)
		}

		// Player routes.
		players := v1.Group("/players")
		{
			players.POST("", deps.PlayerHandler.Create)
			players.GET("/:id", deps.PlayerHandler.GetPlayer)
		}

		// Facility routes.
		facilities := v1.Group("/facilities")
		{
			facilities.POST("", deps.FacilityHandler.Create)
			facilities.GET("", deps.FacilityHandler.GetAll)
			facilities.GET("/:id", deps.FacilityHandler.GetFacility)
		}
	}

	return router
}
