// Package database manages the MySQL connection backing the order record
// store.
//
// Connect opens a GORM connection with sane pool limits and verifies it with
// a ping before handing it to callers. The orders table itself is not created
// here; the record store provisions it lazily on first touch.
package database
