package gallery

import (
	"strings"
)

const (
	exampleStart = "// example: "
	exampleEnd   = "// end-example"
)

// extractExamples collects the code between "// example: <heading>" and
// "// end-example" comment lines, keyed by heading. Common indentation
// is removed. An unterminated example is dropped.
func extractExamples(src string) map[string]string {
	examples := make(map[string]string)

	var heading string
	var body []string
	inExample := false

	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, exampleStart):
			heading = strings.TrimSpace(strings.TrimPrefix(trimmed, exampleStart))
			body = body[:0]
			inExample = true
		case trimmed == exampleEnd:
			if inExample {
				examples[heading] = dedent(body)
			}
			inExample = false
		case inExample:
			body = append(body, line)
		}
	}
	return examples
}

// dedent removes the indentation shared by all non-blank lines and trims
// leading and trailing blank lines.
func dedent(lines []string) string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	prefix := ""
	first := true
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if first {
			prefix, first = indent, false
			continue
		}
		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimPrefix(l, prefix)
	}
	return strings.Join(out, "\n")
}
