package selectfield_test

import (
	"strings"
	"testing"

	"github.com/vango-dev/selectdemo/pkg/render"
	"github.com/vango-dev/selectdemo/pkg/selectfield"
	"github.com/vango-dev/selectdemo/pkg/vdom"
)

func renderHTML(t *testing.T, c vdom.Component) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(vdom.Embed(c))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestRenderNative(t *testing.T) {
	s := newBasic(t)
	if err := s.Choose("2"); err != nil {
		t.Fatal(err)
	}

	node := s.Render()
	selects := node.FindAll(vdom.ByTag("select"))
	if len(selects) != 1 {
		t.Fatalf("select elements = %d, want 1", len(selects))
	}
	if selects[0].Attr("name") != "basic" || selects[0].Attr("id") != "basic" {
		t.Errorf("select id/name = %q/%q", selects[0].Attr("id"), selects[0].Attr("name"))
	}

	opts := node.FindAll(vdom.ByTag("option"))
	// placeholder + three people
	if len(opts) != 4 {
		t.Fatalf("options = %d, want 4", len(opts))
	}
	if !opts[0].HasAttr("hidden") || opts[0].TextContent() != "Select name" {
		t.Errorf("placeholder option = %+v", opts[0].Props)
	}
	if !opts[2].HasAttr("selected") || opts[2].Attr("value") != "2" {
		t.Errorf("selected option = %+v", opts[2].Props)
	}

	labels := node.FindAll(vdom.ByTag("label"))
	if len(labels) != 1 || labels[0].TextContent() != "Name" || labels[0].Attr("for") != "basic" {
		t.Errorf("label = %+v", labels)
	}
}

func TestRenderDisabledItem(t *testing.T) {
	s := selectfield.New("disabled-item", selectfield.Config[string]{
		ItemEnabled: func(s string) bool { return s != "Manolo" },
	}, people...)

	html := renderHTML(t, s)
	if !strings.Contains(html, `<option disabled value="2">Manolo</option>`) {
		t.Errorf("Manolo not rendered disabled:\n%s", html)
	}
	if !strings.Contains(html, `<option value="1">Jose</option>`) {
		t.Errorf("Jose not rendered enabled:\n%s", html)
	}
}

func TestRenderReadOnlyKeepsValue(t *testing.T) {
	s := selectfield.New("ro", selectfield.Config[string]{Label: "Read-only", ReadOnly: true}, people...)
	if err := s.SetValue("Jose"); err != nil {
		t.Fatal(err)
	}

	node := s.Render()
	sel := node.FindAll(vdom.ByTag("select"))[0]
	if !sel.HasAttr("disabled") || !sel.HasAttr("aria-readonly") {
		t.Errorf("read-only select props = %v", sel.Props)
	}
	hidden := node.FindAll(func(n *vdom.VNode) bool {
		return n.Tag == "input" && n.Attr("type") == "hidden"
	})
	if len(hidden) != 1 || hidden[0].Attr("value") != "1" {
		t.Errorf("hidden inputs = %+v", hidden)
	}
	if len(node.FindAll(vdom.ByClass("is-readonly"))) != 1 {
		t.Error("missing is-readonly class")
	}
}

func TestRenderSeparators(t *testing.T) {
	s := selectfield.New("sep", selectfield.Config[string]{
		EmptySelectionAllowed:     true,
		EmptySelectionCaption:     "Weekdays",
		EmptySelectionCaptionOnly: true,
	}, "Mon", "Sat")
	s.AddSeparatorAfterEmpty()

	node := s.Render()
	if n := len(node.FindAll(vdom.ByTag("hr"))); n != 1 {
		t.Errorf("separators = %d, want 1", n)
	}
	first := node.FindAll(vdom.ByTag("option"))[0]
	if first.TextContent() != "Weekdays" || !first.HasAttr("disabled") {
		t.Errorf("caption option = %v %q", first.Props, first.TextContent())
	}
}

func TestRenderRequiredAndError(t *testing.T) {
	s := selectfield.New("title", selectfield.Config[string]{Label: "Title", Required: true}, "Mr", "Ms")
	s.SetError("Title is required")

	html := renderHTML(t, s)
	for _, want := range []string{
		`class="required-indicator"`,
		`aria-invalid="true"`,
		`aria-describedby="title-error"`,
		`<small class="select-error" id="title-error" role="alert">Title is required</small>`,
		`is-required is-invalid`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in:\n%s", want, html)
		}
	}
}

func TestRenderListbox(t *testing.T) {
	s := selectfield.New("emotion", selectfield.Config[string]{
		Label: "Feeling",
		Render: func(e string) *vdom.VNode {
			return vdom.Span(vdom.Class("emotion"), vdom.Strong(vdom.Text(e)))
		},
	}, "Happy", "Sad")
	if err := s.Choose("1"); err != nil {
		t.Fatal(err)
	}

	node := s.Render()
	if len(node.FindAll(vdom.ByTag("select"))) != 0 {
		t.Error("custom renderer should not use a native select")
	}
	radios := node.FindAll(func(n *vdom.VNode) bool { return n.Attr("type") == "radio" })
	if len(radios) != 2 {
		t.Fatalf("radios = %d, want 2", len(radios))
	}
	if !radios[0].HasAttr("checked") || radios[0].Attr("name") != "emotion" {
		t.Errorf("first radio = %v", radios[0].Props)
	}
	if n := len(node.FindAll(vdom.ByClass("emotion"))); n != 2 {
		t.Errorf("custom content nodes = %d, want 2", n)
	}
	if legend := node.FindAll(vdom.ByTag("legend")); len(legend) != 1 || legend[0].TextContent() != "Feeling" {
		t.Errorf("legend = %+v", legend)
	}
}

func TestRenderIsLive(t *testing.T) {
	s := newBasic(t)
	page := vdom.Div(s)

	before := renderHTML(t, page)
	if err := s.Choose("1"); err != nil {
		t.Fatal(err)
	}
	after := renderHTML(t, page)

	if before == after {
		t.Error("embedded widget did not re-render after a change")
	}
	if !strings.Contains(after, `<option selected value="1">Jose</option>`) {
		t.Errorf("selected option missing:\n%s", after)
	}
}
