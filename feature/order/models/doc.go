// Package models defines the order record persisted in the record store and
// the transaction message exchanged over the queue.
package models
