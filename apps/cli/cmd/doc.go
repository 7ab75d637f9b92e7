// Package cmd implements the lunarica CLI commands using Cobra.
//
// Running lunarica with no subcommand starts the interactive console.
// Flags seed the session (base URL, headers, timeouts) and configure the
// transport; they override the config file and LUNARICA_* variables.
//
// Available commands:
//   - init: Write a starter .lunarica.yaml
//   - version: Show lunarica version information
//   - completion: Generate shell completion scripts
package cmd
