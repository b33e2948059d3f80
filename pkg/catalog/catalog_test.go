package catalog_test

import (
	"strings"
	"testing"

	"github.com/vango-dev/selectdemo/pkg/catalog"
	"github.com/vango-dev/selectdemo/pkg/render"
	"github.com/vango-dev/selectdemo/pkg/vdom"
)

func TestRegisterKeepsOrder(t *testing.T) {
	r := catalog.New()
	r.Register("Basic usage", "", vdom.Div("a"))
	r.Register("Validation", "Required", vdom.Div("b"))
	r.Register("Validation", "Using with Binder", vdom.Div("c"), vdom.Div("d"))

	cards := r.Cards()
	if len(cards) != 3 || r.Len() != 3 {
		t.Fatalf("cards = %d, want 3", len(cards))
	}
	want := []string{"Basic usage", "Validation / Required", "Validation / Using with Binder"}
	for i, c := range cards {
		if c.Title() != want[i] {
			t.Errorf("card %d = %q, want %q", i, c.Title(), want[i])
		}
	}
	if len(cards[2].Fragments) != 2 {
		t.Errorf("fragments = %d, want 2", len(cards[2].Fragments))
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *catalog.Registry)
	}{
		{"empty group", func(r *catalog.Registry) { r.Register("", "x", vdom.Div()) }},
		{"blank group", func(r *catalog.Registry) { r.Register("  ", "", vdom.Div()) }},
		{"no fragments", func(r *catalog.Registry) { r.Register("Basic usage", "") }},
		{"only nil fragments", func(r *catalog.Registry) { r.Register("Basic usage", "", nil, (*vdom.VNode)(nil)) }},
		{"only options", func(r *catalog.Registry) { r.Register("Basic usage", "", catalog.WithSource("x")) }},
		{"unsupported argument", func(r *catalog.Registry) { r.Register("Basic usage", "", 42) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := catalog.New()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
				if r.Len() != 0 {
					t.Error("invalid card was registered")
				}
			}()
			tt.fn(r)
		})
	}
}

func TestCardsIsACopy(t *testing.T) {
	r := catalog.New()
	r.Register("Basic usage", "", vdom.Div())

	cards := r.Cards()
	cards[0].GroupLabel = "changed"
	cards[0].Fragments[0] = nil

	again := r.Cards()
	if again[0].GroupLabel != "Basic usage" || again[0].Fragments[0] == nil {
		t.Error("registered card was mutated through Cards()")
	}
}

func TestAnchors(t *testing.T) {
	r := catalog.New()
	r.Register("Basic usage", "", vdom.Div())
	r.Register("Presentation", "Customizing drop down options", vdom.Div())
	r.Register("Basic usage", "", vdom.Div())
	r.Register("Disabled and Read-only", "", vdom.Div())

	want := []string{
		"basic-usage",
		"presentation-customizing-drop-down-options",
		"basic-usage-2",
		"disabled-and-read-only",
	}
	for i, c := range r.Cards() {
		if c.Anchor != want[i] {
			t.Errorf("anchor %d = %q, want %q", i, c.Anchor, want[i])
		}
	}
}

func TestGroups(t *testing.T) {
	r := catalog.New()
	r.Register("Basic usage", "", vdom.Div())
	r.Register("Validation", "Required", vdom.Div())
	r.Register("Validation", "Using with Binder", vdom.Div())
	r.Register("Styling", "Styling references", vdom.Div())

	groups := r.Groups()
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[1].Label != "Validation" || len(groups[1].Cards) != 2 {
		t.Errorf("groups[1] = %+v", groups[1])
	}
}

func TestWithSource(t *testing.T) {
	r := catalog.New()
	r.Register("Basic usage", "", vdom.Div(), catalog.WithSource("\n\tsel := New()\n"))

	if got := r.Cards()[0].Source; got != "sel := New()" {
		t.Errorf("Source = %q", got)
	}
}

type counter struct{ n int }

func (c *counter) Render() *vdom.VNode {
	c.n++
	return vdom.Span(vdom.Textf("render %d", c.n))
}

func TestComponentFragmentsAreLazy(t *testing.T) {
	c := &counter{}
	r := catalog.New()
	r.Register("Basic usage", "", c)

	if c.n != 0 {
		t.Fatalf("component rendered at registration")
	}

	renderer := render.NewRenderer(render.RendererConfig{})
	for i := 1; i <= 2; i++ {
		html, err := renderer.RenderToString(r.Render())
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(html, "render "+string(rune('0'+i))) {
			t.Errorf("render %d missing from:\n%s", i, html)
		}
	}
}

func TestRender(t *testing.T) {
	r := catalog.New()
	r.Register("Basic usage", "", vdom.Div(vdom.ID("basic"), "content"))
	r.Register("Validation", "Required", vdom.Div(), catalog.WithSource("required := New()"))
	r.Register("Validation", "Using with Binder", vdom.Div())

	node := r.Render()

	sections := node.FindAll(vdom.ByTag("section"))
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}
	if sections[0].Attr("id") != "basic-usage" {
		t.Errorf("section id = %q", sections[0].Attr("id"))
	}

	// Group heading only on the first card of a group.
	h2 := node.FindAll(vdom.ByTag("h2"))
	if len(h2) != 2 || h2[0].TextContent() != "Basic usage" || h2[1].TextContent() != "Validation" {
		t.Errorf("h2 = %d", len(h2))
	}
	if h3 := node.FindAll(vdom.ByTag("h3")); len(h3) != 2 {
		t.Errorf("h3 = %d, want 2", len(h3))
	}

	code := node.FindAll(vdom.ByTag("code"))
	if len(code) != 1 || code[0].TextContent() != "required := New()" {
		t.Errorf("code blocks = %+v", code)
	}

	links := node.FindAll(vdom.ByTag("a"))
	hrefs := make([]string, 0, len(links))
	for _, a := range links {
		hrefs = append(hrefs, a.Attr("href"))
	}
	want := "#basic-usage #validation-required #validation-required #validation-using-with-binder"
	if strings.Join(hrefs, " ") != want {
		t.Errorf("nav hrefs = %v", hrefs)
	}
}

func TestCardContent(t *testing.T) {
	r := catalog.New()
	r.Register("Entity list", "", vdom.Span("x"))

	content := r.Cards()[0].Content()
	if content.Attr("data-card-content") != "entity-list" {
		t.Errorf("data-card-content = %q", content.Attr("data-card-content"))
	}
	if content.TextContent() != "x" {
		t.Errorf("content = %q", content.TextContent())
	}
}
