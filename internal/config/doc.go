// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides type-safe
// access to the settings the demo driver needs while keeping configuration
// details out of the domain.
package config
