// Package checkerapi models the wire contract of the remote checker
// daemon: the JSON request body is a NamedArgumentMap, and the
// response is a single-entry object mapping the invoked command name to
// a CheckerResult whose exitcode and perfdata fields are untagged
// unions realized with custom UnmarshalJSON, trying each representation
// in turn, the decode-side mirror of argvalue's untagged encode side.
package checkerapi

import (
	"encoding/json"
	"fmt"
)

// Exitcode is either a concrete 0-3 code (anything else maps to
// Unknown by the caller) or NotExecuted, wire-encoded as {}.
type Exitcode struct {
	Executed    bool
	Code        int
	NotExecuted bool
}

// UnmarshalJSON accepts a JSON number or an empty object.
func (e *Exitcode) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		e.Executed = true
		e.Code = n
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		e.NotExecuted = true
		return nil
	}
	return fmt.Errorf("checkerapi: exitcode is neither a number nor {}: %s", data)
}

// PerfdataKind distinguishes the three untagged Perfdata shapes.
type PerfdataKind int

const (
	PerfdataNone PerfdataKind = iota
	PerfdataSingle
	PerfdataMultiple
)

// Perfdata is a single performance-data line, multiple lines, or absent
// ({}).
type Perfdata struct {
	Kind   PerfdataKind
	Single string
	Lines  []string
}

// UnmarshalJSON tries string, then []string, then {}, the same
// try-the-next-variant discipline argparser uses for grammar
// alternatives.
func (p *Perfdata) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Kind = PerfdataSingle
		p.Single = s
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		p.Kind = PerfdataMultiple
		p.Lines = lines
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		p.Kind = PerfdataNone
		return nil
	}
	return fmt.Errorf("checkerapi: perfdata is not a string, array or {}: %s", data)
}

// Valid reports whether Perfdata carries data: a non-empty Single line,
// or a Multiple with at least one line (the lines themselves are not
// checked for emptiness).
func (p Perfdata) Valid() bool {
	switch p.Kind {
	case PerfdataSingle:
		return p.Single != ""
	case PerfdataMultiple:
		return len(p.Lines) > 0
	default:
		return false
	}
}

// String joins Multiple lines with a single space, the newer convention
// chosen over an empty-string join.
func (p Perfdata) String() string {
	switch p.Kind {
	case PerfdataSingle:
		return p.Single
	case PerfdataMultiple:
		out := ""
		for i, l := range p.Lines {
			if i > 0 {
				out += " "
			}
			out += l
		}
		return out
	default:
		return ""
	}
}

// CheckerResult is the decoded value of the single entry in a checker
// response body.
type CheckerResult struct {
	Exitcode    Exitcode `json:"exitcode"`
	Checkresult string   `json:"checkresult"`
	Perfdata    Perfdata `json:"perfdata"`
}

// responseBody is the full wire response: a single-entry object keyed
// by the invoked command name.
type responseBody map[string]CheckerResult
