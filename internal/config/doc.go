// Package config provides configuration loading, merging, and validation
// facilities for the webhook service binaries.
//
// Configuration is assembled from multiple sources (later sources override
// earlier non-zero fields):
//  1. .env file
//  2. JSON or YAML config file
//  3. Environment variables
//  4. Command-line flags
//
// Defaults fill anything left empty. The single entry point is
// [GetStructuredConfig].
package config
