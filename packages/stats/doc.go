// Package stats records request latencies for the current console session.
//
// Latencies are kept in HDR histograms (1µs to 60s, 3 significant digits),
// once overall and once per HTTP method. Nothing is persisted.
package stats
