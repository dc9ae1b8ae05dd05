// Package config provides configuration loading, merging, and validation
// facilities for the dictionary server and the caching client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the server and
// [GetClientConfig] for the client.
package config
