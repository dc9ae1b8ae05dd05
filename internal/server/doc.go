// Package server runs the dictionary server's transports.
//
// The HTTP server serves the dictionary API; the gRPC server serves the
// health service. Both stop gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
