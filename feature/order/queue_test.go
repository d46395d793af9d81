package order

import (
	"context"
	"encoding/json"
	"testing"

	"retail-storage/core/broker/mocks"
	"retail-storage/feature/order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBroker is an in-memory broker.Client. Fetch hands back pending
// messages and drops them, the way the broker acknowledges on delivery.
type fakeBroker struct {
	pending [][]byte
}

func (f *fakeBroker) EnsureQueue(ctx context.Context, name string) error { return nil }

func (f *fakeBroker) Publish(ctx context.Context, queue string, body []byte) error {
	f.pending = append(f.pending, body)
	return nil
}

func (f *fakeBroker) Fetch(ctx context.Context, queue string, max int) ([][]byte, error) {
	n := max
	if n > len(f.pending) {
		n = len(f.pending)
	}
	batch := f.pending[:n]
	f.pending = f.pending[n:]
	return batch, nil
}

func (f *fakeBroker) IsHealthy() bool { return true }

func (f *fakeBroker) Close() error { return nil }

func TestQueue_Send(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		queue := NewQueue(client, "transactions", zap.NewNop())

		client.On("EnsureQueue", mock.Anything, "transactions").Return(nil)

		var sent []byte
		client.On("Publish", mock.Anything, "transactions", mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(2).([]byte) }).
			Return(nil)

		ok := queue.Send(context.Background(), "order-1", models.ActionProcessPayment)
		require.True(t, ok)

		var msg models.TransactionMessage
		require.NoError(t, json.Unmarshal(sent, &msg))
		assert.Equal(t, "order-1", msg.OrderID)
		assert.Equal(t, "ProcessPayment", msg.Action)
		assert.False(t, msg.Timestamp.IsZero())
		assert.Equal(t, msg.Timestamp.UTC(), msg.Timestamp)
	})

	t.Run("ProvisioningFailure", func(t *testing.T) {
		client := new(mocks.Client)
		queue := NewQueue(client, "transactions", zap.NewNop())

		client.On("EnsureQueue", mock.Anything, "transactions").Return(assert.AnError)

		ok := queue.Send(context.Background(), "order-1", models.ActionProcessPayment)
		assert.False(t, ok)
		client.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PublishFailure", func(t *testing.T) {
		client := new(mocks.Client)
		queue := NewQueue(client, "transactions", zap.NewNop())

		client.On("EnsureQueue", mock.Anything, "transactions").Return(nil)
		client.On("Publish", mock.Anything, "transactions", mock.Anything).Return(assert.AnError)

		ok := queue.Send(context.Background(), "order-1", models.ActionProcessPayment)
		assert.False(t, ok)
	})
}

func TestQueue_ReceiveBatch(t *testing.T) {
	t.Run("ReturnsRawPayloads", func(t *testing.T) {
		client := new(mocks.Client)
		queue := NewQueue(client, "transactions", zap.NewNop())

		client.On("EnsureQueue", mock.Anything, "transactions").Return(nil)
		client.On("Fetch", mock.Anything, "transactions", 2).
			Return([][]byte{[]byte(`{"orderId":"a"}`), []byte(`{"orderId":"b"}`)}, nil)

		messages := queue.ReceiveBatch(context.Background(), 2)
		require.Len(t, messages, 2)
		assert.Equal(t, `{"orderId":"a"}`, messages[0])
	})

	t.Run("DefaultBatchSize", func(t *testing.T) {
		client := new(mocks.Client)
		queue := NewQueue(client, "transactions", zap.NewNop())

		client.On("EnsureQueue", mock.Anything, "transactions").Return(nil)
		client.On("Fetch", mock.Anything, "transactions", DefaultReceiveBatch).
			Return([][]byte{}, nil)

		messages := queue.ReceiveBatch(context.Background(), 0)
		assert.Empty(t, messages)
		client.AssertExpectations(t)
	})

	t.Run("RemovesMessagesOnReceipt", func(t *testing.T) {
		broker := &fakeBroker{}
		queue := NewQueue(broker, "transactions", zap.NewNop())

		require.True(t, queue.Send(context.Background(), "order-1", models.ActionProcessPayment))
		require.True(t, queue.Send(context.Background(), "order-2", models.ActionProcessPayment))

		first := queue.ReceiveBatch(context.Background(), 1)
		require.Len(t, first, 1)
		assert.Contains(t, first[0], "order-1")

		// The first message is gone; only the second remains.
		second := queue.ReceiveBatch(context.Background(), 5)
		require.Len(t, second, 1)
		assert.NotEqual(t, first[0], second[0])
		assert.Contains(t, second[0], "order-2")

		assert.Empty(t, queue.ReceiveBatch(context.Background(), 5))
	})

	t.Run("ErrorYieldsEmpty", func(t *testing.T) {
		client := new(mocks.Client)
		queue := NewQueue(client, "transactions", zap.NewNop())

		client.On("EnsureQueue", mock.Anything, "transactions").Return(nil)
		client.On("Fetch", mock.Anything, "transactions", 5).Return(nil, assert.AnError)

		messages := queue.ReceiveBatch(context.Background(), 5)
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})
}
