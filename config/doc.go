// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// It carries the ordered list of feed directories plus output settings.
package config
