// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the first
// source holding a non-zero value wins:
//
// Server ([GetStructuredConfig]):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Defaults
//
// Client ([GetClientConfig]):
//  1. Values bound to CLI flags
//  2. Environment variables
//  3. JSON config file
//  4. Defaults
package config
