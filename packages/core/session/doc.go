// Package session holds the mutable request-building state of a lunarica run.
//
// A single State is created at startup and threaded through every command
// invocation by the dispatcher. It records:
//   - The base URL requests are resolved against
//   - Headers, query parameters and body parameters accumulated by commands
//   - Connection and read timeouts applied per request
//   - The exit flag checked by the console loop
//   - The last successful response, for inspection commands
//
// State is not safe for concurrent use. The console guarantees that only one
// command runs at a time.
package session
