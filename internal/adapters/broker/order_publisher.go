package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/core/ports/publishers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tour_orders",
	Subsystem: "events",
	Name:      "published_total",
	Help:      "Order events handed to the broker, by type and result.",
}, []string{"type", "result"})

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderPublisher writes order events to a Kafka topic keyed by order ID, so every
// event of one order lands on the same partition.
type OrderPublisher struct {
	l     *slog.Logger
	w     messageWriter
	topic string
}

var _ publishers.OrderEventPublisher = (*OrderPublisher)(nil)

func NewOrderPublisher(l *slog.Logger, brokers []string, topic string) *OrderPublisher {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newOrderPublisher(l, w, topic)
}

func newOrderPublisher(l *slog.Logger, w messageWriter, topic string) *OrderPublisher {
	return &OrderPublisher{l: l, w: w, topic: topic}
}

func (p *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		eventsPublished.WithLabelValues(string(event.Type), "error").Inc()
		return fmt.Errorf("marshal order event: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: b,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		eventsPublished.WithLabelValues(string(event.Type), "error").Inc()
		return fmt.Errorf("write kafka message: %w", err)
	}

	eventsPublished.WithLabelValues(string(event.Type), "ok").Inc()
	return nil
}

func (p *OrderPublisher) Close() error {
	if err := p.w.Close(); err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
		return err
	}
	return nil
}

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct {
	l *slog.Logger
}

var _ publishers.OrderEventPublisher = (*NoopPublisher)(nil)

func NewNoopPublisher(l *slog.Logger) *NoopPublisher {
	return &NoopPublisher{l: l}
}

func (p *NoopPublisher) PublishOrderEvent(_ context.Context, event domain.OrderEvent) error {
	p.l.Debug("Dropping order event",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID))
	eventsPublished.WithLabelValues(string(event.Type), "dropped").Inc()
	return nil
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
