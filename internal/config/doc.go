// Package config loads the client configuration from environment variables,
// command-line flags, and an optional JSON file, merges the three sources,
// and exposes a validated client-specific view.
package config
