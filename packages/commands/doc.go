// Package commands implements the lunarica console commands.
//
// Commands are grouped by category:
//   - system: exit, help, cd
//   - network: get, post, put, patch, delete
//   - headers: headers, header, rm-header, load-headers
//   - body: body, body-params, rm-body, clear-body, load-body
//   - query: query, query-params, rm-query
//   - auth: auth
//   - misc: clear-params, timeout, params, clear
//   - inspect: last, stats, schema
//
// Register adds all of them to a command.Registry.
package commands
