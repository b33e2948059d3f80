// Package site assembles the full HTML page around a gallery. The demo
// server and the static exporter share it so both emit the same markup.
package site

import (
	"bytes"
	"encoding/json"

	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/pkg/assets"
	"github.com/vango-dev/selectdemo/pkg/render"
	"github.com/vango-dev/selectdemo/pkg/vdom"
)

// DefaultTitle is the page title when Options.Title is empty.
const DefaultTitle = "Select"

// FlashID is the element id of the JSON island carrying flash toasts.
const FlashID = "selectdemo-flash"

// Options control how the page is wired to a server.
type Options struct {
	Title string
	Lang  string

	// Assets links the client script and stylesheet.
	Assets assets.Resolver

	// Live enables the WebSocket event channel at LivePath.
	Live     bool
	LivePath string

	// Events enables the form POST fallback at EventsPath.
	Events     bool
	EventsPath string

	// Flash holds notification details shown once on load.
	Flash []map[string]any

	// Pretty indents the output.
	Pretty bool
}

// Page builds the page data for g.
func Page(g *gallery.Gallery, opts Options) (render.PageData, error) {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	body := map[string]string{
		"data-live":   boolString(opts.Live),
		"data-events": boolString(opts.Events),
	}
	if opts.LivePath != "" {
		body["data-live-path"] = opts.LivePath
	}
	if opts.EventsPath != "" {
		body["data-events-path"] = opts.EventsPath
	}

	page := render.PageData{
		Title:     title,
		Lang:      opts.Lang,
		Body:      vdom.Fragment(vdom.H1(vdom.Class("page-title"), vdom.Text(title)), g.Render()),
		BodyAttrs: body,
		Meta:      []render.MetaTag{{Name: "description", Content: "Select component examples"}},
	}
	if opts.Assets != nil {
		page.StyleSheets = []string{opts.Assets.Asset("styles.css")}
		page.Scripts = append(page.Scripts, render.ScriptTag{Src: opts.Assets.Asset("client.js"), Defer: true})
	}
	if len(opts.Flash) > 0 {
		island, err := flashJSON(opts.Flash)
		if err != nil {
			return render.PageData{}, err
		}
		page.Scripts = append(page.Scripts, render.ScriptTag{ID: FlashID, Type: "application/json", Inline: island})
	}
	return page, nil
}

// Render writes the complete page for g.
func Render(g *gallery.Gallery, opts Options) ([]byte, error) {
	page, err := Page(g, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty})
	if err := r.RenderPage(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// flashJSON encodes the toasts for a script element. json.Marshal
// escapes '<', so a message cannot close the element.
func flashJSON(toasts []map[string]any) (string, error) {
	b, err := json.Marshal(toasts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
