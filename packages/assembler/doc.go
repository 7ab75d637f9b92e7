// Package assembler turns the accumulated session state into a request
// ready to hand to the transport.
//
// URL resolution, in precedence order:
//   - A path starting with http:// or https:// is used verbatim
//   - A path starting with / replaces everything after the base URL's scheme and host
//   - An empty path leaves the base URL unchanged
//   - Anything else is appended to the base URL with exactly one / between them
//
// Query parameters are appended in name order as raw name=value pairs.
// Body parameters are coerced to booleans, null, integers or floats when their
// text has that shape and fall back to strings otherwise.
package assembler
