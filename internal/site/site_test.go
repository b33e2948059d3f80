package site

import (
	"strings"
	"testing"

	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/pkg/assets"
)

func TestRenderLiveServerPage(t *testing.T) {
	g := gallery.New(gallery.Deps{})
	html, err := Render(g, Options{
		Assets:     assets.NewPassthroughResolver("/_selectdemo/"),
		Live:       true,
		LivePath:   "/live",
		Events:     true,
		EventsPath: "/events",
		Flash:      []map[string]any{{"message": "</script><b>"}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(html)
	for _, want := range []string{
		"<title>Select</title>",
		`data-live="true"`,
		`data-live-path="/live"`,
		`data-events="true"`,
		`<link rel="stylesheet" href="/_selectdemo/styles.css">`,
		`<script src="/_selectdemo/client.js" defer></script>`,
		`id="selectdemo-flash" type="application/json"`,
		"Basic usage",
		"Styling references",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, "</script><b>") {
		t.Error("flash message was not escaped")
	}
}

func TestRenderStaticPage(t *testing.T) {
	g := gallery.New(gallery.Deps{})
	html, err := Render(g, Options{Title: "Static", Assets: assets.NewPassthroughResolver("")})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, `data-live="false"`) || !strings.Contains(out, `data-events="false"`) {
		t.Errorf("static page should disable events: %s", out[:200])
	}
	if strings.Contains(out, FlashID) {
		t.Error("flash island rendered without flash toasts")
	}
	if !strings.Contains(out, `href="styles.css"`) {
		t.Error("relative stylesheet link missing")
	}
}
