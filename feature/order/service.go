package order

import (
	"context"
	"time"

	"retail-storage/feature/order/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordStore persists and lists order records.
type RecordStore interface {
	Put(ctx context.Context, record *models.OrderRecord) bool
	ListAll(ctx context.Context) []models.OrderRecord
}

// TransactionQueue notifies downstream processors about persisted orders.
type TransactionQueue interface {
	Send(ctx context.Context, orderID, action string) bool
	ReceiveBatch(ctx context.Context, max int) []string
}

// Input carries the caller-supplied fields of a new order.
type Input struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Valid reports whether the input can become an order.
func (in Input) Valid() bool {
	return in.CustomerName != "" && in.ProductName != "" && in.Quantity >= 0 && in.Price >= 0
}

// Service implements the order workflow: persist the record, then notify the
// transaction queue. The two writes are independent; there is no rollback
// link between them.
type Service struct {
	store  RecordStore
	queue  TransactionQueue
	logger *zap.Logger
}

// NewService creates a new order workflow service.
func NewService(store RecordStore, queue TransactionQueue, logger *zap.Logger) *Service {
	return &Service{store: store, queue: queue, logger: logger}
}

// Submit assigns the order identity and metadata, persists the record and, on
// success, sends the payment-processing notification. When the persist fails
// no message is sent and the empty id is returned. The send's own outcome
// does not feed back into the order.
func (s *Service) Submit(ctx context.Context, in Input) (string, bool) {
	record := &models.OrderRecord{
		OrderID:      uuid.NewString(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		ProductID:    in.ProductID,
		ProductName:  in.ProductName,
		Quantity:     in.Quantity,
		Price:        in.Price,
		OrderDate:    time.Now().UTC(),
		Status:       models.StatusPending,
	}
	record.SetKeys()

	if !s.store.Put(ctx, record) {
		s.logger.Error("Order submission failed",
			zap.String("order_id", record.OrderID))
		return "", false
	}

	s.queue.Send(ctx, record.OrderID, models.ActionProcessPayment)

	s.logger.Info("Order submitted", zap.String("order_id", record.OrderID))
	return record.OrderID, true
}

// Orders returns the current order snapshot.
func (s *Service) Orders(ctx context.Context) []models.OrderRecord {
	return s.store.ListAll(ctx)
}

// ProcessPending drains up to max pending transaction messages and returns
// their raw payloads.
func (s *Service) ProcessPending(ctx context.Context, max int) []string {
	return s.queue.ReceiveBatch(ctx, max)
}
