package models

import "time"

// PartitionOrders is the fixed partition every order record belongs to.
const PartitionOrders = "Orders"

// Order lifecycle statuses. Only StatusPending is assigned at creation;
// transitions happen in the downstream queue consumer.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
)

// ActionProcessPayment is the action attached to the transaction message
// emitted after a successful order persist.
const ActionProcessPayment = "ProcessPayment"

// OrderRecord is a single order row in the record store, addressed by the
// (partition key, row key) pair. Records are insert-only: they are never
// updated or deleted once written.
type OrderRecord struct {
	PartitionKey string `gorm:"column:partition_key;primaryKey;size:64" json:"partition_key"`
	RowKey       string `gorm:"column:row_key;primaryKey;size:64" json:"row_key"`

	OrderID      string `gorm:"column:order_id;size:64" json:"order_id"`
	CustomerID   string `gorm:"column:customer_id;size:64" json:"customer_id"`
	CustomerName string `gorm:"column:customer_name;size:255" json:"customer_name"`
	ProductID    string `gorm:"column:product_id;size:64" json:"product_id"`
	ProductName  string `gorm:"column:product_name;size:255" json:"product_name"`
	Quantity     int    `gorm:"column:quantity" json:"quantity"`

	// Price is stored as a double; the records table carries no decimal
	// column type.
	Price float64 `gorm:"column:price" json:"price"`

	OrderDate time.Time `gorm:"column:order_date" json:"order_date"`
	Status    string    `gorm:"column:status;size:32" json:"status"`
}

// SetKeys regenerates the composite identity from the order id. It must be
// called before every persistence attempt.
func (o *OrderRecord) SetKeys() {
	o.PartitionKey = PartitionOrders
	o.RowKey = o.OrderID
}

// Total returns the line total for the order.
func (o *OrderRecord) Total() float64 {
	return o.Price * float64(o.Quantity)
}

// TransactionMessage is the payload placed on the transaction queue after an
// order is persisted. Consumers parse this exact shape.
type TransactionMessage struct {
	OrderID   string    `json:"orderId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
