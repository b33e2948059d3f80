package gallery

import "testing"

func TestExtractExamples(t *testing.T) {
	src := `package x

func a() {
	// example: First
	x := 1

	if x > 0 {
		x++
	}
	// end-example
}

func b() {
	// example: Unterminated
	y := 2
}
`
	got := extractExamples(src)

	want := "x := 1\n\nif x > 0 {\n\tx++\n}"
	if got["First"] != want {
		t.Errorf("First = %q, want %q", got["First"], want)
	}
	if _, ok := got["Unterminated"]; ok {
		t.Error("unterminated example should be dropped")
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"empty", nil, ""},
		{"blank edges", []string{"", "  a", "  b", ""}, "a\nb"},
		{"shortest indent wins", []string{"\t\ta", "\tb"}, "\ta\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedent(tt.lines); got != tt.want {
				t.Errorf("dedent = %q, want %q", got, tt.want)
			}
		})
	}
}
