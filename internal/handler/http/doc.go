// Package http implements the HTTP transport of the dictionary server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, response compression and the
// HashSHA256 integrity header are handled here before requests reach the
// dictionary service.
package http
