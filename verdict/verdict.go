// Package verdict formats a checker result's checkresult and perfdata
// text into the monitoring platform's textual output and exit-code
// convention: a
// single line of text on standard output and a process exit code drawn
// from the closed {OK,WARNING,CRITICAL,UNKNOWN} enum.
package verdict

import "strings"

// ExitCode is the closed monitoring exit-code taxonomy. Any integer
// outside this range, whether from the wire or from an internal error,
// maps to Unknown.
type ExitCode int

const (
	OK ExitCode = iota
	Warning
	Critical
	Unknown ExitCode = 3
)

// FromInt totals the mapping int -> ExitCode, defaulting to Unknown.
func FromInt(n int) ExitCode {
	switch n {
	case 0:
		return OK
	case 1:
		return Warning
	case 2:
		return Critical
	default:
		return Unknown
	}
}

// Format builds the single output line for a checkresult/perfdata pair:
// "{checkresult} | {perfdata}" when perfdata is present and non-empty,
// otherwise just "{checkresult}". \r\n in checkresult is normalized to
// \n first.
func Format(checkresult string, perfdata string, perfdataValid bool) string {
	normalized := strings.ReplaceAll(checkresult, "\r\n", "\n")
	if perfdataValid && perfdata != "" {
		return normalized + " | " + perfdata
	}
	return normalized
}

// UnknownLine is the fixed message for the "empty response body" error
// kind.
const UnknownLine = "No check result in API response."
