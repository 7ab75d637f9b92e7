// Package capture extracts values from the last HTTP response.
//
// An expression selects the source:
//   - status: the status code
//   - duration: the round-trip time in milliseconds
//   - header <name>: a response header, matched case-insensitively
//   - body [path]: the body, or the value at a gjson path within it
//
// Any other expression is treated as a gjson path into the body.
package capture
