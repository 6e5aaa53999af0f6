package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"toylang/internal/source"
)

// Error is the single error value produced by every front-end pass.
type Error struct {
	Code     Code
	Span     source.Span
	Msg      string
	Expected []string // parse errors only
}

func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s at %d: %s", e.Code, e.Span.Offset, e.Msg)
	}
	return fmt.Sprintf("%s at %d: %s (expected %s)", e.Code, e.Span.Offset, e.Msg, strings.Join(e.Expected, ", "))
}

func Errorf(code Code, span source.Span, format string, args ...any) *Error {
	return &Error{Code: code, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or "" for foreign errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// LocOf resolves err's position in f. Foreign errors resolve to 1:1.
func LocOf(f *source.File, err error) Loc {
	loc := Loc{Filename: f.Name, Line: 1, Col: 1}
	var de *Error
	if errors.As(err, &de) {
		loc.Line, loc.Col = f.LineCol(de.Span.Offset)
	}
	return loc
}

// Render writes err as
//
//	name:line:col: error[CODE]: msg
//	<source line>
//	<spaces>^
//
// The caret sits under the 1-based column regardless of tab width.
func Render(w io.Writer, f *source.File, err error) {
	var de *Error
	if !errors.As(err, &de) {
		fmt.Fprintf(w, "%s: error: %v\n", f.Name, err)
		return
	}
	line, col := f.LineCol(de.Span.Offset)
	msg := de.Msg
	if len(de.Expected) > 0 {
		msg += " (expected " + strings.Join(de.Expected, ", ") + ")"
	}
	fmt.Fprintf(w, "%s:%d:%d: error[%s]: %s\n", f.Name, line, col, de.Code, msg)
	fmt.Fprintf(w, "%s\n", f.Line(line))
	fmt.Fprintf(w, "%s^\n", strings.Repeat(" ", col-1))
}
