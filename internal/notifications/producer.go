package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// UserLookup resolves the guest's contact details for outgoing events
type UserLookup interface {
	GetContact(ctx context.Context, userID uuid.UUID) (email, name string, err error)
}

// ProducerConfig contains configuration for the booking event producer
type ProducerConfig struct {
	Brokers         []string
	Topic           string
	ClientID        string
	RetryMax        int
	Timeout         time.Duration
	RequiredAcks    sarama.RequiredAcks
	CompressionType sarama.CompressionCodec
	Idempotent      bool
	MaxMessageBytes int
}

func DefaultProducerConfig(kafka config.KafkaConfig) *ProducerConfig {
	return &ProducerConfig{
		Brokers:         kafka.Brokers,
		Topic:           kafka.Topic,
		ClientID:        kafka.ClientID,
		RetryMax:        3,
		Timeout:         10 * time.Second,
		RequiredAcks:    sarama.WaitForAll,
		CompressionType: sarama.CompressionSnappy,
		Idempotent:      true,
		MaxMessageBytes: 1000000,
	}
}

// SaramaConfig builds the sync producer configuration
func (pc *ProducerConfig) SaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = pc.ClientID

	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = pc.RequiredAcks
	cfg.Producer.Compression = pc.CompressionType
	cfg.Producer.Retry.Max = pc.RetryMax
	cfg.Producer.Timeout = pc.Timeout
	cfg.Producer.Idempotent = pc.Idempotent
	cfg.Producer.MaxMessageBytes = pc.MaxMessageBytes

	// idempotent writes require a single in-flight request
	if pc.Idempotent {
		cfg.Net.MaxOpenRequests = 1
	}

	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	return cfg
}

// BookingEventProducer publishes booking lifecycle events to Kafka
type BookingEventProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
	users    UserLookup
	log      *logger.Logger
	now      func() time.Time
}

func NewBookingEventProducer(pc *ProducerConfig, users UserLookup) (*BookingEventProducer, error) {
	producer, err := sarama.NewSyncProducer(pc.Brokers, pc.SaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewBookingEventProducerWithClient(producer, pc, users), nil
}

// NewBookingEventProducerWithClient wraps an existing sync producer
func NewBookingEventProducerWithClient(producer sarama.SyncProducer, pc *ProducerConfig, users UserLookup) *BookingEventProducer {
	return &BookingEventProducer{
		producer: producer,
		config:   pc,
		users:    users,
		log:      logger.GetDefault(),
		now:      time.Now,
	}
}

func (p *BookingEventProducer) PublishBookingEvent(ctx context.Context, eventType bookings.EventType, booking *bookings.Booking) error {
	event := NewBookingEvent(eventType, booking, p.now())
	if p.users != nil {
		email, name, err := p.users.GetContact(ctx, booking.UserID)
		if err != nil {
			p.log.WarnContext(ctx, "booking event without guest contact", "booking_id", booking.ID.String(), "error", err)
		} else {
			event.GuestEmail, event.GuestName = email, name
		}
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.Topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Headers:   createHeaders(event),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	p.log.DebugContext(ctx, "booking event published",
		"topic", p.config.Topic,
		"partition", partition,
		"offset", offset,
		"type", string(eventType),
		"booking_id", booking.ID.String(),
	)
	return nil
}

func createHeaders(event *BookingEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("booking_id"), Value: []byte(event.BookingID.String())},
		{Key: []byte("spot_id"), Value: []byte(event.SpotID.String())},
		{Key: []byte("version"), Value: []byte("1.0")},
		{Key: []byte("producer"), Value: []byte("campspots-api")},
		{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
	}
}

func (p *BookingEventProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}

// NoopPublisher is used when Kafka is disabled
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingEvent(context.Context, bookings.EventType, *bookings.Booking) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }

// Publisher is a bookings.EventPublisher that can be shut down
type Publisher interface {
	bookings.EventPublisher
	Close() error
}

// NewPublisher returns a Kafka producer, or a no-op when Kafka is disabled
func NewPublisher(kafka config.KafkaConfig, users UserLookup) (Publisher, error) {
	if !kafka.Enabled {
		return NoopPublisher{}, nil
	}
	return NewBookingEventProducer(DefaultProducerConfig(kafka), users)
}
