package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Category groups error codes by the part of the tool that raised them.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryData   Category = "data"
	CategoryExport Category = "export"
	CategoryServer Category = "server"
	CategoryCLI    Category = "cli"
)

// excerptRadius is the number of lines shown on each side of a location.
const excerptRadius = 2

// Location is a position in a config or data file. Column is 1-based and
// zero when unknown.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// SourceLine is one numbered line of a file excerpt.
type SourceLine struct {
	Num  int
	Text string
}

// AppError is a structured error with an optional file location and a
// fix suggestion.
type AppError struct {
	// Code is the registered identifier, e.g. "SD121".
	Code     string
	Category Category

	// Message is the one-line summary; Detail explains it.
	Message string
	Detail  string

	Location *Location
	// Excerpt holds the lines around Location.
	Excerpt []SourceLine

	Suggestion string
	Wrapped    error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Wrapped
}

// WithLocation points the error at file:line:column and reads the lines
// around it from disk. A file that cannot be read leaves the excerpt empty.
func (e *AppError) WithLocation(file string, line, column int) *AppError {
	src, _ := os.ReadFile(file)
	return e.WithSource(file, src, line, column)
}

// WithSource is WithLocation for content that is already in memory.
func (e *AppError) WithSource(file string, src []byte, line, column int) *AppError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Excerpt = excerpt(src, line, excerptRadius)
	return e
}

func (e *AppError) WithSuggestion(s string) *AppError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *AppError) WithDetail(d string) *AppError {
	e.Detail = d
	return e
}

func (e *AppError) Wrap(err error) *AppError {
	e.Wrapped = err
	return e
}

// excerpt returns lines line-radius through line+radius of src, clipped to
// the file.
func excerpt(src []byte, line, radius int) []SourceLine {
	if len(src) == 0 || line < 1 {
		return nil
	}
	lines := bytes.Split(bytes.TrimRight(src, "\n"), []byte("\n"))
	if line > len(lines) {
		return nil
	}
	first := max(1, line-radius)
	last := min(len(lines), line+radius)
	out := make([]SourceLine, 0, last-first+1)
	for n := first; n <= last; n++ {
		out = append(out, SourceLine{Num: n, Text: string(bytes.TrimRight(lines[n-1], "\r"))})
	}
	return out
}

// New creates an AppError from a registered code.
func New(code string) *AppError {
	tmpl, ok := registry[code]
	if !ok {
		return &AppError{Code: code, Message: "Unknown error"}
	}
	return &AppError{
		Code:     code,
		Category: tmpl.Category,
		Message:  tmpl.Message,
		Detail:   tmpl.Detail,
	}
}

// FromError wraps err under code unless it already carries an AppError.
func FromError(err error, code string) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return New(code).Wrap(err)
}
