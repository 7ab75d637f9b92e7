// Package console runs the read-dispatch loop.
//
// On a terminal the loop is a bubbletea program around a bubbles textinput
// that highlights the typed command, shows its usage hint, cycles Tab
// completions and walks the line history. When input is piped each line
// is dispatched in turn until EOF or until a command asks to exit.
//
// Either way lines are dispatched one at a time, and session state is only
// touched from inside a dispatch.
package console
