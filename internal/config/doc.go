// Package config provides configuration loading, merging, and validation
// facilities for the POS sync client.
//
// Configuration is assembled from multiple sources. For each field the first
// source providing a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (POS_* names)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
