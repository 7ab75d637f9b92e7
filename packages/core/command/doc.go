// Package command holds the command registry and the dispatcher that turns
// console lines into command executions.
//
// Commands are registered under their name and every alias in a single
// lookup table; a later registration with the same name replaces the
// earlier one. Lookup is case-insensitive because the dispatcher lower-cases
// the first token of every line.
//
// The dispatcher also serves the line editor: it completes partial lines,
// returns inline hints and splits a line into highlight spans.
package command
