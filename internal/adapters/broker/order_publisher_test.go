package broker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() domain.OrderEvent {
	return domain.OrderEvent{
		Type:        domain.OrderEventCreated,
		OrderID:     "order-1",
		OrderNumber: "ORD-2025-0001",
		Status:      domain.OrderStatusOpen,
		Version:     1,
		ActorID:     "user-1",
		OccurredAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderPublisher_WritesKeyedJSON(t *testing.T) {
	w := &fakeWriter{}
	p := newOrderPublisher(discardLogger(), w, "order-events")
	before := testutil.ToFloat64(eventsPublished.WithLabelValues(string(domain.OrderEventCreated), "ok"))

	err := p.PublishOrderEvent(context.Background(), sampleEvent())

	require.NoError(t, err)
	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "order-events", msg.Topic)
	assert.Equal(t, []byte("order-1"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "order.created", string(msg.Headers[0].Value))

	var decoded domain.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, sampleEvent(), decoded)
	assert.Equal(t, before+1, testutil.ToFloat64(eventsPublished.WithLabelValues(string(domain.OrderEventCreated), "ok")))
}

func TestOrderPublisher_ReturnsWriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := newOrderPublisher(discardLogger(), w, "order-events")
	before := testutil.ToFloat64(eventsPublished.WithLabelValues(string(domain.OrderEventCreated), "error"))

	err := p.PublishOrderEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "leader not available")
	assert.Equal(t, before+1, testutil.ToFloat64(eventsPublished.WithLabelValues(string(domain.OrderEventCreated), "error")))
}

func TestOrderPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	p := newOrderPublisher(discardLogger(), w, "order-events")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(discardLogger())

	assert.NoError(t, p.PublishOrderEvent(context.Background(), sampleEvent()))
}
