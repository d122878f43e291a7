package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"getaway/pkg/logger"
)

// Consumer interface defines the contract for the order-event worker
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConsumerConfig contains configuration for the Kafka consumer group
type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topics           []string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "getaway-order-workers",
		Topics:           []string{"order-confirmations"},
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     false,
	}
}

// KafkaConsumer consumes order-confirmed events and records their delivery.
type KafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	log           *logger.Logger
	cancel        context.CancelFunc
}

// NewKafkaConsumer creates a new order-event consumer
func NewKafkaConsumer(config *ConsumerConfig) (Consumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &KafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		log:           logger.GetDefault(),
	}, nil
}

// Start runs the consume loop until the context is cancelled
func (c *KafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	handler := &eventHandler{log: c.log}

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.Error("Kafka consumer error", slog.Any("error", err))
		}
	}()

	for {
		// Consume blocks until a rebalance or context cancellation; the
		// loop re-joins the group after a rebalance.
		if err := c.consumerGroup.Consume(ctx, c.config.Topics, handler); err != nil {
			return fmt.Errorf("consumer group error: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Stop shuts down the consumer group
func (c *KafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka consumer group: %w", err)
	}
	return nil
}

// eventHandler implements sarama.ConsumerGroupHandler
type eventHandler struct {
	log *logger.Logger
}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var event OrderConfirmedEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			h.log.Error("Dropping malformed order event",
				slog.String("topic", message.Topic),
				slog.Int64("offset", message.Offset),
				slog.Any("error", err),
			)
			session.MarkMessage(message, "")
			continue
		}

		h.log.Info("Order event received",
			slog.String("confirmation_number", event.ConfirmationNumber),
			slog.String("session_id", event.SessionID),
			slog.Int("item_count", event.ItemCount),
			slog.Float64("total", event.Total),
		)
		session.MarkMessage(message, "")
	}
	return nil
}
