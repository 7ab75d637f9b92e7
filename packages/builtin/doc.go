// Package builtin provides the dynamic values lunarica expands inside
// paths, headers, query values and body values.
//
// Available functions:
//   - uuid(): Random UUID v4
//   - now(): Current time in RFC3339 (UTC)
//   - timestamp(), timestampMs(): Current Unix time in seconds or milliseconds
//   - random(min, max): Random integer in range
//   - randomString(length): Random alphanumeric string
//   - base64(value): Base64 encode a string
//   - urlEncode(value): Query-escape a string
//   - date(layout): Current date formatted with a Go layout
//   - env(name): Environment variable value
//
// Functions are invoked with the {{$functionName(args)}} syntax, e.g.
//
//	header X-Request-Id:{{$uuid()}}
package builtin
