package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/selectdemo/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:       "Select <demo>",
		Body:        vdom.Main(vdom.Text("content")),
		Meta:        []MetaTag{{Name: "description", Content: "Select demos"}},
		StyleSheets: []string{"/app.css"},
		Styles:      []string{"body{margin:0}"},
		Scripts:     []ScriptTag{{Src: "/client.js", Defer: true}},
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	html := buf.String()
	checks := []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Select &lt;demo&gt;</title>",
		`<meta name="description" content="Select demos">`,
		`<link rel="stylesheet" href="/app.css">`,
		"<style>body{margin:0}</style>",
		"<main>content</main>",
		`<script src="/client.js" defer></script>`,
		"</body>\n</html>\n",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestRenderPageLang(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{Lang: "fi"}); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(buf.String(), `<html lang="fi">`) {
		t.Errorf("lang not applied: %s", buf.String())
	}
}

func TestRenderInlineScript(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Scripts: []ScriptTag{{Inline: "window.x=1"}},
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(buf.String(), "<script>window.x=1</script>") {
		t.Errorf("inline script missing: %s", buf.String())
	}
}

func TestRenderBodyAttrsAndDataScript(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		BodyAttrs: map[string]string{"data-live": "true", "data-events-path": "/events"},
		Scripts:   []ScriptTag{{ID: "flash", Type: "application/json", Inline: "[]"}},
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `<body data-events-path="/events" data-live="true">`) {
		t.Errorf("body attrs missing or unsorted: %s", html)
	}
	if !strings.Contains(html, `<script id="flash" type="application/json">[]</script>`) {
		t.Errorf("data script missing: %s", html)
	}
}
