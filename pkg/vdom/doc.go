// Package vdom provides the server-side node tree used to describe UI.
//
// VNode is the fundamental building block representing elements, text,
// fragments and raw HTML. Props holds attributes; Attr values build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H2(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be attributes, child nodes, slices of either, components
// or plain strings (shorthand for Text). nil arguments are skipped, which
// keeps conditional markup terse:
//
//	Div(If(showHint, Small(Text("optional"))))
//
// # Layouts
//
// VerticalLayout, HorizontalLayout and FlexLayout are thin wrappers that
// tag a div with a layout class interpreted by the page stylesheet.
package vdom
