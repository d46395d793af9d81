// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port and the API key used by the auth
// middleware. It is loaded as a subsection of the main application
// configuration (see core/config).
package server
