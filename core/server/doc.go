// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure and the helpers derived from it.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key required by the auth
// middleware, and the body limit applied to capture uploads.
package server
