package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/IBM/sarama"
)

type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topics               []string
	SessionTimeout       time.Duration
	Heartbeat            time.Duration
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

func DefaultConsumerConfig(kafka config.KafkaConfig) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              kafka.Brokers,
		GroupID:              kafka.GroupID,
		Topics:               []string{kafka.Topic},
		SessionTimeout:       30 * time.Second,
		Heartbeat:            3 * time.Second,
		OffsetOldest:         false,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

// BookingEventConsumer reads booking events and hands them to a Notifier
type BookingEventConsumer struct {
	group    sarama.ConsumerGroup
	config   *ConsumerConfig
	notifier Notifier
	log      *logger.Logger
}

func NewBookingEventConsumer(cc *ConsumerConfig, notifier Notifier) (*BookingEventConsumer, error) {
	cfg := sarama.NewConfig()
	cfg.Consumer.Group.Session.Timeout = cc.SessionTimeout
	cfg.Consumer.Group.Heartbeat.Interval = cc.Heartbeat
	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Offsets.AutoCommit.Enable = true
	cfg.Consumer.Offsets.AutoCommit.Interval = time.Second
	if cc.OffsetOldest {
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(cc.Brokers, cc.GroupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &BookingEventConsumer{
		group:    group,
		config:   cc,
		notifier: notifier,
		log:      logger.GetDefault(),
	}, nil
}

// Run consumes until ctx is cancelled
func (c *BookingEventConsumer) Run(ctx context.Context) error {
	go func() {
		for err := range c.group.Errors() {
			c.log.ErrorContext(ctx, "consumer group error", "error", err)
		}
	}()

	handler := &consumerGroupHandler{consumer: c}
	for {
		if err := c.group.Consume(ctx, c.config.Topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.log.ErrorContext(ctx, "error consuming booking events", "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *BookingEventConsumer) Close() error {
	return c.group.Close()
}

func (c *BookingEventConsumer) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event BookingEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		// a malformed message can never succeed, skip it
		c.log.ErrorContext(ctx, "dropping malformed booking event",
			"partition", message.Partition, "offset", message.Offset, "error", err)
		return nil
	}
	return c.executeWithRetry(ctx, &event)
}

func (c *BookingEventConsumer) executeWithRetry(ctx context.Context, event *BookingEvent) error {
	var err error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if err = c.notifier.Notify(ctx, event); err == nil {
			return nil
		}
		if attempt == c.config.MaxRetries {
			break
		}

		// exponential backoff
		delay := c.config.RetryBackoffDuration * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("notify %s after %d attempts: %w", event.BookingRef, c.config.MaxRetries+1, err)
}

type consumerGroupHandler struct {
	consumer *BookingEventConsumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.consumer.processMessage(session.Context(), message); err != nil {
				if session.Context().Err() != nil {
					// shutting down mid-retry, leave it for the next owner of the partition
					return nil
				}
				h.consumer.log.ErrorContext(session.Context(), "booking event not delivered, skipping",
					"partition", message.Partition, "offset", message.Offset, "error", err)
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
