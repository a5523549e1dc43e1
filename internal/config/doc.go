// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source is never overridden):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source fall back to the defaults in
// defaults.go. The main entry point is [GetClientConfig].
package config
