package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    CodeInvalidPort,
			wantMsg: "Invalid port number",
			wantCat: CategoryConfig,
		},
		{
			name:    "data error",
			code:    CodeDataParse,
			wantMsg: "Invalid sample data file",
			wantCat: CategoryData,
		},
		{
			name:    "export error",
			code:    CodeExportTarget,
			wantMsg: "Invalid export target",
			wantCat: CategoryExport,
		},
		{
			name:    "unknown error code",
			code:    "SD999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := New(CodeExportWrite).Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if got := err.Error(); got != "SD141: Writing an export file failed: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	var ae *AppError
	if !stderrors.As(error(err), &ae) || ae.Code != CodeExportWrite {
		t.Error("errors.As should find the AppError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeDataRead) != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New(CodeDataInvalid)
	if FromError(orig, CodeDataRead) != orig {
		t.Error("FromError should return AppErrors unchanged")
	}

	wrapped := FromError(os.ErrNotExist, CodeDataRead)
	if wrapped.Code != CodeDataRead || !stderrors.Is(wrapped, os.ErrNotExist) {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestWithLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.hcl")
	content := "line1\nline2\nline3\nline4\nline5\nline6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	err := New(CodeDataParse).WithLocation(path, 3, 2)
	if err.Location.String() != path+":3:2" {
		t.Errorf("Location = %q", err.Location.String())
	}
	if len(err.Excerpt) != 5 || err.Excerpt[0] != (SourceLine{1, "line1"}) || err.Excerpt[4] != (SourceLine{5, "line5"}) {
		t.Errorf("Excerpt = %v", err.Excerpt)
	}
}

func TestWithLocationMissingFile(t *testing.T) {
	err := New(CodeDataParse).WithLocation("/does/not/exist.hcl", 3, 0)
	if err.Excerpt != nil {
		t.Errorf("Excerpt = %v, want nil", err.Excerpt)
	}
	if err.Location.String() != "/does/not/exist.hcl:3" {
		t.Errorf("Location = %q", err.Location.String())
	}
}

func TestExcerptClipsToFile(t *testing.T) {
	src := []byte("team \"A\" {}\nteam {\n")
	tests := []struct {
		name  string
		line  int
		first int
		count int
	}{
		{"first line", 1, 1, 2},
		{"last line", 2, 1, 2},
		{"past end", 9, 0, 0},
		{"zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(CodeDataParse).WithSource("data.hcl", src, tt.line, 1).Excerpt
			if len(got) != tt.count {
				t.Fatalf("Excerpt = %v, want %d lines", got, tt.count)
			}
			if tt.count > 0 && got[0].Num != tt.first {
				t.Errorf("first line = %d, want %d", got[0].Num, tt.first)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	err := New(CodeInvalidPort).
		WithSuggestion("Use a port such as 8080").
		Wrap(stderrors.New("port 70000"))

	out := err.Format(false)
	for _, want := range []string{
		"ERROR SD102: Invalid port number",
		"The port must be between 1 and 65535.",
		"Cause: port 70000",
		"Hint: Use a port such as 8080",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format(false) emitted ANSI codes")
	}
}

func TestFormatMarksLocation(t *testing.T) {
	src := []byte("department \"A\" {}\ndepartment {}\nteam \"B\" {}\n")
	out := New(CodeDataParse).WithSource("data.hcl", src, 2, 12).Format(false)
	if !strings.Contains(out, "data.hcl:2:12") {
		t.Errorf("missing location:\n%s", out)
	}
	if !strings.Contains(out, ">    2 | department {}") {
		t.Errorf("missing marked line:\n%s", out)
	}
	if !strings.Contains(out, "|            ^") {
		t.Errorf("missing column caret:\n%s", out)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New(CodeDataParse)
	err.Location = &Location{File: "data.hcl", Line: 7, Column: 1}

	if got := err.FormatCompact(); got != "data.hcl:7:1: SD121: Invalid sample data file" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeConfigInvalid).WithDetail("log.format must be text or json")
	err.Location = &Location{File: "selectdemo.yaml", Line: 3}

	b, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatal(jerr)
	}
	got := string(b)
	for _, want := range []string{
		`"code":"SD101"`,
		`"category":"config"`,
		`"detail":"log.format must be text or json"`,
		`"location":{"file":"selectdemo.yaml","line":3}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON missing %s: %s", want, got)
		}
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, fmt.Errorf("export: %w", New(CodeExportTarget)))
	if !strings.Contains(buf.String(), "ERROR SD142: Invalid export target") {
		t.Errorf("Fprint(AppError) = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, stderrors.New("boom"))
	if got := buf.String(); got != "\nERROR: boom\n\n" {
		t.Errorf("Fprint(plain) = %q", got)
	}
}

func TestRegistryCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) != len(registry) {
		t.Fatalf("GetAllCodes() = %d codes, want %d", len(codes), len(registry))
	}
	for i, code := range codes {
		if !strings.HasPrefix(code, "SD") {
			t.Errorf("code %q lacks SD prefix", code)
		}
		if i > 0 && codes[i-1] >= code {
			t.Errorf("codes not sorted: %q before %q", codes[i-1], code)
		}
		tmpl, ok := GetTemplate(code)
		if !ok || tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("template %q = %+v", code, tmpl)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	if len(lines) != 3 || lines[0] != "one two" {
		t.Errorf("wrapText = %q", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
