package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// style applies ANSI attributes when enabled.
type style bool

func (s style) wrap(code, text string) string {
	if !s {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (s style) red(t string) string  { return s.wrap("31", t) }
func (s style) cyan(t string) string { return s.wrap("36", t) }
func (s style) gray(t string) string { return s.wrap("90", t) }
func (s style) bold(t string) string { return s.wrap("1", t) }

// Format renders the error for a terminal. color enables ANSI styling.
func (e *AppError) Format(color bool) string {
	s := style(color)
	var b strings.Builder

	b.WriteString("\n")
	head := "ERROR"
	if e.Code != "" {
		head += " " + e.Code
	}
	fmt.Fprintf(&b, "%s %s\n\n", s.red(s.bold(head+":")), s.bold(e.Message))

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", s.cyan(e.Location.String()))
		if len(e.Excerpt) > 0 {
			for _, l := range e.Excerpt {
				marker := "  "
				if l.Num == e.Location.Line {
					marker = s.red("> ")
				}
				fmt.Fprintf(&b, "  %s%4d %s %s\n", marker, l.Num, s.gray("|"), l.Text)
				if l.Num == e.Location.Line && e.Location.Column > 0 {
					fmt.Fprintf(&b, "         %s %s%s\n", s.gray("|"), strings.Repeat(" ", e.Location.Column-1), s.red("^"))
				}
			}
			b.WriteString("\n")
		}
	}

	for _, line := range wrapText(e.Detail, 70) {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if e.Detail != "" {
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s %s\n\n", s.gray("Cause:"), e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n\n", s.cyan("Hint:"), e.Suggestion)
	}
	return b.String()
}

// FormatCompact renders the error on one line, compiler style.
func (e *AppError) FormatCompact() string {
	var parts []string
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	if e.Wrapped != nil {
		parts = append(parts, e.Wrapped.Error())
	}
	return strings.Join(parts, ": ")
}

type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	Cause      string    `json:"cause,omitempty"`
}

// MarshalJSON encodes the error for machine consumers. The excerpt is
// omitted.
func (e *AppError) MarshalJSON() ([]byte, error) {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	return json.Marshal(out)
}

func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := []string{words[0]}
	for _, w := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(w) > width {
			lines = append(lines, w)
			continue
		}
		*last += " " + w
	}
	return lines
}

// Fprint writes err to w. AppErrors get the full layout; colors are used
// only when w is a terminal and NO_COLOR is unset.
func Fprint(w io.Writer, err error) {
	color := isTerminal(w) && os.Getenv("NO_COLOR") == ""
	var ae *AppError
	if errors.As(err, &ae) {
		fmt.Fprint(w, ae.Format(color))
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", style(color).red(style(color).bold("ERROR:")), err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
