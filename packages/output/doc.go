// Package output renders responses and console messages for lunarica.
//
// The Renderer re-indents JSON payloads and colors each token class
// (keys, strings, numbers, booleans, null and punctuation) with a fixed
// ANSI palette, wrapping lines that would overflow the terminal. Payloads
// that are not valid JSON are returned verbatim.
//
// The Console formats the request line, response banners, transport
// errors and the notices commands print.
package output
