package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyNotifier struct {
	failures int
	calls    int
	last     *BookingEvent
}

func (n *flakyNotifier) Notify(ctx context.Context, event *BookingEvent) error {
	n.calls++
	n.last = event
	if n.calls <= n.failures {
		return errors.New("smtp unavailable")
	}
	return nil
}

func newTestConsumer(n Notifier) *BookingEventConsumer {
	return &BookingEventConsumer{
		config:   &ConsumerConfig{MaxRetries: 2, RetryBackoffDuration: time.Millisecond},
		notifier: n,
		log:      logger.GetDefault(),
	}
}

func TestProcessMessage(t *testing.T) {
	event := NewBookingEvent(bookings.EventBookingAccepted, testBooking(), time.Now())
	payload, err := event.ToJSON()
	require.NoError(t, err)

	t.Run("delivers after retries", func(t *testing.T) {
		n := &flakyNotifier{failures: 2}
		c := newTestConsumer(n)

		require.NoError(t, c.processMessage(context.Background(), &sarama.ConsumerMessage{Value: payload}))
		assert.Equal(t, 3, n.calls)
		assert.Equal(t, event.BookingRef, n.last.BookingRef)
	})

	t.Run("gives up", func(t *testing.T) {
		n := &flakyNotifier{failures: 10}
		c := newTestConsumer(n)

		err := c.processMessage(context.Background(), &sarama.ConsumerMessage{Value: payload})
		assert.Error(t, err)
		assert.Equal(t, 3, n.calls)
	})

	t.Run("malformed payload is skipped", func(t *testing.T) {
		n := &flakyNotifier{}
		c := newTestConsumer(n)

		assert.NoError(t, c.processMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{not json")}))
		assert.Zero(t, n.calls)
	})
}

type recordingSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *recordingSession) Context() context.Context { return s.ctx }

func (s *recordingSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type channelClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *channelClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumeClaimMarksUndeliverableMessages(t *testing.T) {
	payload, err := NewBookingEvent(bookings.EventBookingRequested, testBooking(), time.Now()).ToJSON()
	require.NoError(t, err)

	claim := &channelClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 7, Value: payload}
	claim.messages <- &sarama.ConsumerMessage{Offset: 8, Value: []byte("{not json")}
	claim.messages <- &sarama.ConsumerMessage{Offset: 9, Value: payload}
	close(claim.messages)

	// every delivery fails, retries included
	n := &flakyNotifier{failures: 100}
	handler := &consumerGroupHandler{consumer: newTestConsumer(n)}
	session := &recordingSession{ctx: context.Background()}

	require.NoError(t, handler.ConsumeClaim(session, claim))
	assert.Equal(t, []int64{7, 8, 9}, session.marked)
	assert.Equal(t, 6, n.calls)
}

func TestConsumeClaimLeavesMessageOnShutdown(t *testing.T) {
	payload, err := NewBookingEvent(bookings.EventBookingRequested, testBooking(), time.Now()).ToJSON()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	claim := &channelClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: payload}
	close(claim.messages)

	c := newTestConsumer(&flakyNotifier{failures: 100})
	c.config.RetryBackoffDuration = time.Hour
	session := &recordingSession{ctx: ctx}

	require.NoError(t, (&consumerGroupHandler{consumer: c}).ConsumeClaim(session, claim))
	assert.Empty(t, session.marked)
}

func TestSubject(t *testing.T) {
	event := NewBookingEvent(bookings.EventBookingAccepted, testBooking(), time.Now())
	assert.Equal(t, "Booking CMP-20240601-ABCDEF confirmed for 2024-06-01 to 2024-06-04", Subject(event))

	event.Type = bookings.EventBookingDeclined
	assert.Equal(t, "Booking CMP-20240601-ABCDEF was declined", Subject(event))

	assert.NoError(t, NewLogNotifier(logger.GetDefault()).Notify(context.Background(), event))
}
