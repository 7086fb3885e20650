package routepattern

import (
	"errors"
	"fmt"
	"strings"
)

// The messages below are shown to people editing route tables and are kept
// word for word, including the misspelled MissingRequiredIdentifierError.
var (
	UnexpectedMatchTextError       = errors.New("Unexpected character in match text")
	UnidentifiedTextError          = errors.New("Unidentified text in routing string")
	MissingIdentifierError         = errors.New("Did not find expected identifier")
	MissingRequiredIdentifierError = errors.New("Did not find expected identifer")
	MissingRegexError              = errors.New("Did not find expected regex")
	MissingRegexDelimiterError     = errors.New("Did not find expected /")
	MissingRegexOrCloseError       = errors.New("Did not find expected regex string or }")
	MissingClosingBraceError       = errors.New("Did not find expected }")
)

// MissingEndError is kept for API completeness: the list only ends cleanly at
// the end of the input, so Parse never reports it.
var MissingEndError = errors.New("Did not find expected end of routing string")

// Diagnostic is a non-fatal parse error.
//
// Column is 1-based and counted in characters. It is the scanner position at
// which the problem was detected, not necessarily the start of the offending
// token.
type Diagnostic struct {
	Column int
	Err    error
}

// Message returns the message of the underlying error, without the column.
func (d Diagnostic) Message() string {
	if d.Err == nil {
		return ""
	}

	return d.Err.Error()
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("column %d: %s", d.Column, d.Message())
}

// Unwrap returns the underlying error, which does not include the column.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

var _ error = Diagnostic{}

// CaretLine returns a line with a "^" under the given 1-based column, to be
// printed below the pattern a diagnostic refers to.
func CaretLine(column int) string {
	if column < 1 {
		column = 1
	}

	return strings.Repeat(" ", column-1) + "^"
}
