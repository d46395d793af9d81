// Package order implements the order workflow over two storage backends.
//
// The record store (Store) keeps order rows addressed by a fixed partition
// key and a row key equal to the order id. The transaction queue (Queue)
// carries JSON notifications for downstream payment processing.
//
// The workflow (Service.Submit) performs two independent writes: persist the
// record, then send the notification. A failed persist stops the workflow; a
// failed send leaves a persisted order without a pending message. There is no
// transactional link between the two.
//
// # HTTP Endpoints
//
//   - POST /orders : Submit a new order.
//   - GET /orders : List the full order snapshot.
//   - POST /orders/queue/process : Drain pending transaction messages.
package order
