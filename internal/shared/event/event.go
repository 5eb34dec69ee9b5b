package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ecomshop/shop-api/internal/config"
	"github.com/segmentio/kafka-go"
)

// Event types published for orders
const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 5 * time.Second
	batchTimeout        = 10 * time.Millisecond
)

// ErrQueueFull is returned by Publish when the background writer is behind.
var ErrQueueFull = errors.New("event queue full")

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("event publisher closed")

// Envelope is the message body written to the bus.
type Envelope struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// Publisher writes events keyed by aggregate id.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
	Close() error
}

// New returns a Kafka publisher when events are enabled, otherwise a noop.
func New(cfg config.EventsConfig) Publisher {
	if !cfg.Enabled {
		slog.Info("events disabled; using noop publisher")
		return Noop{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{}, // same order id → same partition
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: batchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Transport:    &kafka.Transport{ClientID: cfg.ClientID},
		Logger:       kafka.LoggerFunc(func(msg string, args ...interface{}) { slog.Debug(fmt.Sprintf(msg, args...), "component", "kafka") }),
		ErrorLogger:  kafka.LoggerFunc(func(msg string, args ...interface{}) { slog.Error(fmt.Sprintf(msg, args...), "component", "kafka") }),
	}

	slog.Info("kafka publisher configured", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return newKafkaPublisher(writer, cfg.WriteTimeout, cfg.QueueSize)
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, string, any) error { return nil }
func (Noop) Close() error                                       { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher queues messages and writes them from a single background
// goroutine, so Publish never waits on the broker.
type KafkaPublisher struct {
	writer       messageWriter
	now          func() time.Time
	writeTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan kafka.Message
	done   chan struct{}
}

func newKafkaPublisher(writer messageWriter, writeTimeout time.Duration, queueSize int) *KafkaPublisher {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	p := &KafkaPublisher{
		writer:       writer,
		now:          time.Now,
		writeTimeout: writeTimeout,
		queue:        make(chan kafka.Message, queueSize),
		done:         make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues the event. Write failures are logged by the background
// writer; only encoding errors, a full queue or a closed publisher are
// returned here.
func (p *KafkaPublisher) Publish(_ context.Context, eventType, key string, payload any) error {
	msg, err := p.message(eventType, key, payload)
	if err != nil {
		return err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	select {
	case p.queue <- msg:
		return nil
	default:
		return fmt.Errorf("queue %s event: %w", eventType, ErrQueueFull)
	}
}

func (p *KafkaPublisher) run() {
	defer close(p.done)
	for msg := range p.queue {
		p.write(msg)
	}
}

func (p *KafkaPublisher) write(msg kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("event write failed",
			"component", "kafka",
			"event_type", eventTypeOf(msg),
			"key", string(msg.Key),
			"error", err,
		)
	}
}

func eventTypeOf(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == "event-type" {
			return string(h.Value)
		}
	}
	return ""
}

func (p *KafkaPublisher) message(eventType, key string, payload any) (kafka.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	envelope, err := json.Marshal(Envelope{
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Payload:    body,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s envelope: %w", eventType, err)
	}

	return kafka.Message{
		Key:     []byte(key),
		Value:   envelope,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(eventType)}},
	}, nil
}

// Close stops accepting events, flushes the queue and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.writer.Close()
}
