// Package cliarg lexes PowerShell-flavoured check-plugin argument values
// into a flat token stream.
//
// The lexer is implemented as a deterministic finite-state automaton whose
// states and transitions are Go functions (a stateFn), following the
// text/template lexer pattern: a stateFn reads from the input and either
// returns the next stateFn or nil to signal "return to Control".
// Unlike a source-file lexer, cliarg operates on a single already
// word-split argument string held entirely in memory; there is no
// io.Reader, no line/column tracking and no token queue, since a single
// argument never needs to be re-entered once lexed.
package cliarg
