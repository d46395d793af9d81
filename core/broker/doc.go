// Package broker provides the RabbitMQ transport behind the transaction
// queue.
//
// # Client Interface
//
// The Client interface abstracts the AMQP connection so queue interactions
// can be mocked in unit tests (see core/broker/mocks).
//
// # Delivery Semantics
//
// Publish uses publisher confirms with persistent delivery, so a returned nil
// means the broker has accepted the message. Fetch uses basic.get with
// autoAck enabled: a message is removed from the queue as soon as it is
// delivered and is never redelivered, regardless of what the caller does with
// it afterwards.
package broker
