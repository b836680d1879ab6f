package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"arena/internal/app"
	"arena/internal/config"
	"arena/internal/event"
	"arena/internal/lifecycle"
	"arena/internal/pricing"
	"arena/internal/repository/postgres"
	"arena/internal/service"
)

// The worker completes confirmed bookings whose end time has passed and,
// when Kafka is enabled, relays booking events to the notification sender.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connectCancel()

	db, err := app.NewDatabase(connectCtx, cfg.Database, nil)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	bookingRepo := postgres.NewBookingRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	facilityRepo := postgres.NewFacilityRepository(db)

	notificationService := service.NewNotificationService(service.LogSender{})
	receiptService := service.NewReceiptService(notificationService)
	bookingService := service.NewBookingService(
		bookingRepo, paymentRepo, clientRepo, facilityRepo,
		pricing.NewEngine(pricing.DefaultRules()), lifecycle.NewManager(),
		nil, nil,
		notificationService, receiptService,
		nil, "", 0,
	)

	if cfg.Kafka.Enabled {
		consumer := event.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.BookingTopic)
		defer consumer.Close()

		go func() {
			log.Printf("Consuming %s as group %s", cfg.Kafka.BookingTopic, cfg.Kafka.ConsumerGroup)
			if err := consumer.Consume(ctx, handleBookingEvent); err != nil && ctx.Err() == nil {
				log.Printf("consumer stopped: %v", err)
			}
		}()
	}

	go sweep(ctx, bookingService, cfg.Worker.SweepInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Worker shutting down...")
	cancel()
}

// sweep periodically completes confirmed bookings whose slot has ended.
func sweep(ctx context.Context, bookingService *service.BookingService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			completed, err := bookingService.CompleteElapsed(ctx, now)
			if err != nil {
				log.Printf("sweep failed: %v", err)
				continue
			}
			if len(completed) > 0 {
				log.Printf("sweep completed %d elapsed bookings", len(completed))
			}
		}
	}
}

// handleBookingEvent logs consumed booking events. This is where a real
// bot integration would push to clients.
func handleBookingEvent(_ context.Context, msg kafka.Message) error {
	var e event.BookingEvent
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		log.Printf("skipping malformed event at offset %d: %v", msg.Offset, err)
		return nil
	}

	log.Printf("event %s booking=%s status=%s", e.Type, e.BookingID, e.Status)
	return nil
}
