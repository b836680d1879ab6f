package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"arena/internal/app"
	"arena/internal/config"
	"arena/internal/event"
	"arena/internal/handler"
	"arena/internal/lifecycle"
	"arena/internal/pricing"
	internalRedis "arena/internal/redis"
	"arena/internal/repository/postgres"
	"arena/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Kafka producer is optional; without it events are simply not emitted.
	var producer *event.Producer
	if cfg.Kafka.Enabled {
		producer = event.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		log.Printf("Kafka producer enabled: brokers=%v", cfg.Kafka.Brokers)
	}

	// Wire dependencies.
	server := wireServer(db, redisClient, producer, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, producer *event.Producer, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	lockStore := internalRedis.NewLockStore(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)
	slotHoldStore := internalRedis.NewSlotHoldStore(redisClient)

	// Initialize repositories.
	bookingRepo := postgres.NewBookingRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	coachRepo := postgres.NewCoachRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	facilityRepo := postgres.NewFacilityRepository(db)

	// Initialize core components.
	engine := pricing.NewEngine(pricing.DefaultRules())
	manager := lifecycle.NewManager()

	// The producer interface is nil-able; a typed nil would defeat the
	// nil checks inside the services.
	var publisher service.Publisher
	if producer != nil {
		publisher = producer
	}

	// Initialize services.
	notificationService := service.NewNotificationService(service.LogSender{})
	receiptService := service.NewReceiptService(notificationService)
	bookingService := service.NewBookingService(
		bookingRepo, paymentRepo, clientRepo, facilityRepo,
		engine, manager,
		slotHoldStore, cacheStore,
		notificationService, receiptService,
		publisher, cfg.Kafka.BookingTopic,
		cfg.Booking.SlotHoldTTL,
	)
	paymentService := service.NewPaymentService(
		db, paymentRepo, bookingRepo,
		manager,
		lockStore, cacheStore,
		notificationService,
		publisher, cfg.Kafka.PaymentTopic,
	)

	// Initialize handlers.
	quoteHandler := handler.NewQuoteHandler(bookingService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	clientHandler := handler.NewClientHandler(clientRepo)
	coachHandler := handler.NewCoachHandler(coachRepo)
	playerHandler := handler.NewPlayerHandler(playerRepo, clientRepo)
	facilityHandler := handler.NewFacilityHandler(facilityRepo)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		QuoteHandler:    quoteHandler,
		BookingHandler:  bookingHandler,
		PaymentHandler:  paymentHandler,
		ClientHandler:   clientHandler,
		CoachHandler:    coachHandler,
		PlayerHandler:   playerHandler,
		FacilityHandler: facilityHandler,
		RedisClient:     redisClient,
		NewRelicApp:     nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
