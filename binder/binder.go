// Package binder walks a flat, already word-split list of CLI tokens and
// pairs each "-Name" flag with either the following value (lexed and
// parsed via cliarg/argparser) or an implicit boolean true when the
// next token is itself another flag or the input ends.
package binder

import (
	"fmt"

	"github.com/haxtibal/i4w-callapi/argparser"
	"github.com/haxtibal/i4w-callapi/argvalue"
	"github.com/haxtibal/i4w-callapi/cliarg"
)

// Error names the offending argument and wraps the underlying lex/parse
// failure, or reports that a positional argument was found where a
// "-Name" flag was expected.
type Error struct {
	Arg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("argument %q: %v", e.Arg, e.Err)
	}
	return fmt.Sprintf("argument %q: expected a -Name switch", e.Arg)
}

func (e *Error) Unwrap() error { return e.Err }

// Pair is one bound (name, value) result.
type Pair struct {
	Name  string
	Value argvalue.Value
}

// Binder is a pull-based producer of Pairs: the caller drives it one
// step at a time via Next and decides whether to keep going after an
// error, mirroring knakk/rdf's TripleDecoder.Decode() single-step
// decoder rather than draining everything up front.
type Binder struct {
	args   []string
	cursor int
}

// New returns a Binder over args, the forwarded argument list as
// delivered by the monitoring host (already word-split).
func New(args []string) *Binder {
	return &Binder{args: args}
}

// Next produces the next (name, value) pair. ok is false once the input
// is exhausted; err is non-nil if the current argument could not be
// bound, in which case the cursor still advances so the caller may
// resume with the next argument if it chooses to.
func (b *Binder) Next() (Pair, bool, error) {
	if b.cursor >= len(b.args) {
		return Pair{}, false, nil
	}
	cur := b.args[b.cursor]
	if !IsParameterName(cur) {
		b.cursor++
		return Pair{}, true, &Error{Arg: cur}
	}
	name := cur[1:]
	next, hasNext := b.peekNext()
	if !hasNext || IsParameterName(next) {
		b.cursor++
		return Pair{Name: name, Value: argvalue.Bool(true)}, true, nil
	}
	tokens, err := cliarg.Lex(next)
	if err != nil {
		b.cursor += 2
		return Pair{}, true, &Error{Arg: cur, Err: err}
	}
	val, err := argparser.Parse(tokens)
	if err != nil {
		b.cursor += 2
		return Pair{}, true, &Error{Arg: cur, Err: err}
	}
	b.cursor += 2
	return Pair{Name: name, Value: val}, true, nil
}

func (b *Binder) peekNext() (string, bool) {
	if b.cursor+1 >= len(b.args) {
		return "", false
	}
	return b.args[b.cursor+1], true
}

// IsParameterName reports whether tok is a "-Name" flag: it must begin
// with '-' and its second character must be ASCII alphabetic. In
// particular "-10", "-10:20", "-" and "-$True" are not names: they
// begin with a digit, nothing, or '$' respectively.
func IsParameterName(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	c := tok[1]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
