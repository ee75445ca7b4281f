// Package config holds the runtime configuration for a11yaudit.
//
// The configuration is populated from CLI flags and an optional YAML
// dotfile, validated once up front, and passed through the application by
// dependency injection rather than global state.
package config
