// Package http is the transport lunarica sends assembled requests through.
//
// It wraps the standard library's http package with:
//   - Per-request connection and read timeouts
//   - Redirect, proxy and TLS verification options
//   - Default headers applied beneath request headers
//   - Classification of failures into connection, read-timeout and other errors
package http
