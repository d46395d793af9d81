package order

import (
	"context"
	"encoding/json"
	"time"

	"retail-storage/core/broker"
	"retail-storage/feature/order/models"

	"go.uber.org/zap"
)

// DefaultReceiveBatch is the number of messages pulled per drain when the
// caller does not say otherwise.
const DefaultReceiveBatch = 5

// Queue is the transaction-notification backend. Messages are JSON-encoded
// TransactionMessages on a durable queue provisioned on first touch.
type Queue struct {
	client broker.Client
	name   string
	logger *zap.Logger
}

// NewQueue creates a new transaction queue.
func NewQueue(client broker.Client, name string, logger *zap.Logger) *Queue {
	return &Queue{client: client, name: name, logger: logger}
}

// Send enqueues a transaction message for the given order. The timestamp is
// assigned here, in UTC.
func (q *Queue) Send(ctx context.Context, orderID, action string) bool {
	if err := q.client.EnsureQueue(ctx, q.name); err != nil {
		q.logger.Error("Failed to provision transaction queue",
			zap.String("queue", q.name), zap.Error(err))
		return false
	}

	msg := models.TransactionMessage{
		OrderID:   orderID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		q.logger.Error("Failed to encode transaction message",
			zap.String("order_id", orderID), zap.Error(err))
		return false
	}

	if err := q.client.Publish(ctx, q.name, body); err != nil {
		q.logger.Error("Failed to send transaction message",
			zap.String("order_id", orderID), zap.Error(err))
		return false
	}

	q.logger.Info("Transaction message sent",
		zap.String("order_id", orderID), zap.String("action", action))
	return true
}

// ReceiveBatch pulls up to max raw message payloads. Each message is removed
// from the queue on receipt, so the batch is delivered at most once; a crash
// after this call loses it. Errors and an empty queue both yield an empty
// slice.
func (q *Queue) ReceiveBatch(ctx context.Context, max int) []string {
	if max <= 0 {
		max = DefaultReceiveBatch
	}

	if err := q.client.EnsureQueue(ctx, q.name); err != nil {
		q.logger.Error("Failed to provision transaction queue",
			zap.String("queue", q.name), zap.Error(err))
		return []string{}
	}

	bodies, err := q.client.Fetch(ctx, q.name, max)
	if err != nil {
		q.logger.Error("Failed to receive transaction messages", zap.Error(err))
		return []string{}
	}

	messages := make([]string, 0, len(bodies))
	for _, b := range bodies {
		messages = append(messages, string(b))
	}
	return messages
}
