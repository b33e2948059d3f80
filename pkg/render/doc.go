// Package render turns vdom trees into HTML.
//
// Renderer writes a node tree directly to an io.Writer. Attributes are
// emitted in sorted order so the same tree always produces the same bytes,
// which keeps exported pages diffable and tests exact.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(vdom.Div(vdom.Class("card"), "Hello"))
//
// RenderPage wraps a body tree in a full document with head metadata,
// stylesheets and trailing scripts.
package render
