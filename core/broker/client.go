package broker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Client defines the interface for queue operations.
type Client interface {
	// EnsureQueue declares the queue; safe to call repeatedly.
	EnsureQueue(ctx context.Context, name string) error
	// Publish enqueues a message on the named queue.
	Publish(ctx context.Context, queue string, body []byte) error
	// Fetch pulls up to max currently visible messages. Each returned
	// message is acknowledged on receipt and will not be redelivered.
	Fetch(ctx context.Context, queue string, max int) ([][]byte, error)
	// IsHealthy reports whether the connection and channel are active.
	IsHealthy() bool
	// Close shuts down the broker resources.
	Close() error
}

// rabbitClient handles the low-level communication with RabbitMQ.
type rabbitClient struct {
	conn           *amqp.Connection
	channel        *amqp.Channel
	logger         *zap.Logger
	confirmTimeout time.Duration

	mu         sync.Mutex
	declared   map[string]bool
	connClosed chan *amqp.Error
	chanClosed chan *amqp.Error
	closeOnce  sync.Once
	healthy    atomic.Bool
	cancel     context.CancelFunc
}

// NewClient initializes a connection and a channel, enabling publisher
// confirms by default.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to activate publisher confirms: %w", err)
	}

	confirmTimeout := time.Duration(cfg.ConfirmTimeoutSeconds) * time.Second
	if confirmTimeout <= 0 {
		confirmTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	client := &rabbitClient{
		conn:           conn,
		channel:        ch,
		logger:         logger,
		confirmTimeout: confirmTimeout,
		declared:       make(map[string]bool),
		connClosed:     make(chan *amqp.Error, 1),
		chanClosed:     make(chan *amqp.Error, 1),
		cancel:         cancel,
	}
	client.healthy.Store(true)

	client.conn.NotifyClose(client.connClosed)
	client.channel.NotifyClose(client.chanClosed)

	go func() {
		select {
		case err := <-client.connClosed:
			client.healthy.Store(false)
			logger.Warn("RabbitMQ connection closed", zap.Error(err))
		case err := <-client.chanClosed:
			client.healthy.Store(false)
			logger.Warn("RabbitMQ channel closed", zap.Error(err))
		case <-ctx.Done():
		}
	}()

	logger.Info("Connected to RabbitMQ", zap.String("url", cfg.URL))
	return client, nil
}

// EnsureQueue declares a durable queue. Declaration is idempotent on the
// broker side; the local cache just skips the round-trip on the common path.
func (r *rabbitClient) EnsureQueue(ctx context.Context, name string) error {
	if !r.IsHealthy() {
		return fmt.Errorf("broker connection is closed")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.declared[name] {
		return nil
	}
	if _, err := r.channel.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	r.declared[name] = true
	return nil
}

// Publish sends a message to the queue and blocks until a confirmation
// (ACK/NACK) is received.
func (r *rabbitClient) Publish(ctx context.Context, queue string, body []byte) error {
	if !r.IsHealthy() {
		return fmt.Errorf("broker connection is closed")
	}

	deferred, err := r.channel.PublishWithDeferredConfirmWithContext(
		ctx,
		"", // default exchange routes directly to the queue
		queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish call failed: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-deferred.Done():
		if !deferred.Acked() {
			return fmt.Errorf("RabbitMQ NACK received: message not persisted")
		}
		return nil
	case <-time.After(r.confirmTimeout):
		return fmt.Errorf("publisher confirm timeout")
	}
}

// Fetch pulls up to max messages with basic.get. autoAck removes each
// message from the queue the moment it is delivered, so a crash after Fetch
// loses the in-flight batch.
func (r *rabbitClient) Fetch(ctx context.Context, queue string, max int) ([][]byte, error) {
	if !r.IsHealthy() {
		return nil, fmt.Errorf("broker connection is closed")
	}

	var bodies [][]byte
	for i := 0; i < max; i++ {
		if err := ctx.Err(); err != nil {
			return bodies, err
		}
		msg, ok, err := r.channel.Get(queue, true)
		if err != nil {
			return bodies, fmt.Errorf("failed to get message: %w", err)
		}
		if !ok {
			break
		}
		bodies = append(bodies, msg.Body)
	}
	return bodies, nil
}

// IsHealthy returns true if the connection and channel are active.
func (r *rabbitClient) IsHealthy() bool {
	return r.healthy.Load()
}

// Close gracefully shuts down the RabbitMQ resources.
func (r *rabbitClient) Close() error {
	r.closeOnce.Do(func() {
		r.logger.Info("Terminating RabbitMQ client")
		r.cancel()
		if r.channel != nil {
			r.channel.Close()
		}
		if r.conn != nil {
			r.conn.Close()
		}
	})
	return nil
}
