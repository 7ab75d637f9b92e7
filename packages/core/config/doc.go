// Package config handles configuration loading and management for lunarica.
//
// It provides functionality for:
//   - Loading configuration from .lunarica.yaml, .lunarica.yml, lunarica.yaml or .lunarica.json
//   - Overriding values from LUNARICA_* environment variables and a .env file
//   - Default configuration values
package config
