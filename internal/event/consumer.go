package event

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads booking events from Kafka.
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer creates a Consumer in the given consumer group.
func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

// Consume reads messages until ctx is cancelled, passing each to handle.
// A handler error stops consumption.
func (c *Consumer) Consume(ctx context.Context, handle func(ctx context.Context, msg kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		if err := handle(ctx, msg); err != nil {
			return err
		}
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
