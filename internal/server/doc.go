// Package server runs the HTTP transport of the marketplace service,
// including signal handling and graceful shutdown.
package server
