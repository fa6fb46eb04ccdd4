// Package argparser builds a typed argvalue.Value tree from a
// cliarg.Token stream, using recursive-descent with explicit
// backtracking between the grammar's three top-level productions.
//
//	argument              := sequence_by_comma_op | array | scalar
//	array                 := '[' sequence? ']' | '@(' sequence? ')'
//	sequence_by_comma_op  := element ',' sequence?
//	sequence              := element (',' element)*
//	element               := scalar | array
//	scalar                := STRING | NUMBER | BOOL
package argparser

import (
	"errors"

	"github.com/haxtibal/i4w-callapi/argvalue"
	"github.com/haxtibal/i4w-callapi/cliarg"
)

// ParseError is returned for any parse failure: unbalanced brackets,
// an unexpected token, or empty input. Position information is not
// preserved here; the binder adds context (which argument failed).
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

var errBacktrack = errors.New("argparser: production did not match")

// cursor is a read-only index into an immutable token slice. Each try*
// function takes a cursor by value and returns the cursor positioned
// after what it consumed; on failure the caller simply discards the
// returned cursor and keeps its own, which is all "restore" amounts to
// for a plain slice index.
type cursor struct {
	tok []cliarg.Token
	pos int
}

func (c cursor) done() bool {
	return c.pos >= len(c.tok)
}

func (c cursor) peek() (cliarg.Token, bool) {
	if c.done() {
		return cliarg.Token{}, false
	}
	return c.tok[c.pos], true
}

func (c cursor) advance() cursor {
	return cursor{tok: c.tok, pos: c.pos + 1}
}

// Parse builds a Value tree from a full token stream. All tokens must
// be consumed by the winning production, or the parse fails.
func Parse(tokens []cliarg.Token) (argvalue.Value, error) {
	c := cursor{tok: tokens}
	v, next, err := tryArgument(c)
	if err != nil {
		return nil, &ParseError{Msg: "failed to parse PowerShell syntax"}
	}
	if !next.done() {
		return nil, &ParseError{Msg: "failed to parse PowerShell syntax"}
	}
	return v, nil
}

// tryArgument implements the top-level disjunction. Only the first
// succeeding alternative consumes tokens.
func tryArgument(c cursor) (argvalue.Value, cursor, error) {
	if v, next, err := trySequenceByCommaOp(c); err == nil {
		return v, next, nil
	}
	if v, next, err := tryArray(c); err == nil {
		return v, next, nil
	}
	if v, next, err := tryScalar(c); err == nil {
		return v, next, nil
	}
	return nil, c, errBacktrack
}

// trySequenceByCommaOp requires at least one "element ," prefix (that
// mandatory comma is what distinguishes a bare top-level list from a
// lone scalar). Anything trailing the comma is a greedy, optional
// sequence; a single trailing comma with nothing after it yields a
// one-element array rather than an error.
func trySequenceByCommaOp(c cursor) (argvalue.Value, cursor, error) {
	first, next, err := tryElement(c)
	if err != nil {
		return nil, c, errBacktrack
	}
	next, ok := tryComma(next)
	if !ok {
		return nil, c, errBacktrack
	}
	elems := []argvalue.Value{first}
	if rest, after, ok := trySequence(next); ok {
		elems = append(elems, rest...)
		next = after
	}
	return argvalue.Array(elems), next, nil
}

// trySequence consumes element (',' element)*. A trailing comma with no
// following element ends the loop without error.
func trySequence(c cursor) ([]argvalue.Value, cursor, bool) {
	first, next, err := tryElement(c)
	if err != nil {
		return nil, c, false
	}
	elems := []argvalue.Value{first}
	for {
		afterComma, ok := tryComma(next)
		if !ok {
			break
		}
		elem, afterElem, err := tryElement(afterComma)
		if err != nil {
			break
		}
		elems = append(elems, elem)
		next = afterElem
	}
	return elems, next, true
}

// tryArray accepts '[' sequence? ']' or '@(' sequence? ')'; both empty
// and populated forms are valid, and both forms produce the same Array
// type regardless of which bracket flavour was used.
func tryArray(c cursor) (argvalue.Value, cursor, error) {
	if next, ok := tryToken(c, cliarg.ArrayBegin); ok {
		return finishArray(next, cliarg.ArrayEnd)
	}
	if next, ok := tryToken(c, cliarg.ArrayOpBegin); ok {
		return finishArray(next, cliarg.ArrayOpEnd)
	}
	return nil, c, errBacktrack
}

func finishArray(c cursor, end cliarg.TokenKind) (argvalue.Value, cursor, error) {
	var elems []argvalue.Value
	if seq, after, ok := trySequence(c); ok {
		elems = seq
		c = after
	}
	next, ok := tryToken(c, end)
	if !ok {
		return nil, c, errBacktrack
	}
	return argvalue.Array(elems), next, nil
}

// tryElement is scalar | array.
func tryElement(c cursor) (argvalue.Value, cursor, error) {
	if v, next, err := tryScalar(c); err == nil {
		return v, next, nil
	}
	if v, next, err := tryArray(c); err == nil {
		return v, next, nil
	}
	return nil, c, errBacktrack
}

// tryScalar consumes exactly one String, Number or Bool token.
func tryScalar(c cursor) (argvalue.Value, cursor, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, c, errBacktrack
	}
	switch tok.Kind {
	case cliarg.String:
		return argvalue.String(tok.Text), c.advance(), nil
	case cliarg.Number:
		n, ok := cliarg.ClassifyNumber(tok.Text)
		if !ok {
			// Unreachable with tokens produced by cliarg.Lex: the
			// lexer's is-number predicate and the classifier agree on
			// the set of acceptable forms.
			return nil, c, errBacktrack
		}
		return argvalue.Number{Number: n}, c.advance(), nil
	case cliarg.Bool:
		return argvalue.Bool(tok.Bit), c.advance(), nil
	default:
		return nil, c, errBacktrack
	}
}

func tryComma(c cursor) (cursor, bool) {
	return tryToken(c, cliarg.Comma)
}

func tryToken(c cursor, kind cliarg.TokenKind) (cursor, bool) {
	tok, ok := c.peek()
	if !ok || tok.Kind != kind {
		return c, false
	}
	return c.advance(), true
}
