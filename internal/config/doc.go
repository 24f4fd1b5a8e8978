// Package config provides configuration loading, merging, and validation
// for the consent server.
//
// Configuration is assembled from environment variables, command-line flags,
// an optional JSON file and built-in defaults. For each field the first
// source that sets a non-zero value wins, in that order.
//
// The entry point is [GetStructuredConfig].
package config
