package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Only use with trusted markup such as embedded icons.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			if c := Embed(v); c != nil {
				node.Children = append(node.Children, c)
			}
		}
	}

	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Range maps items to nodes, skipping nil results.
func Range[T any](items []T, fn func(int, T) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(i, item); node != nil {
			out = append(out, node)
		}
	}
	return out
}

// Layout helpers. The demos place widgets in vertical, horizontal and
// wrapping flex containers; the page stylesheet gives these classes
// their flex rules.

// VerticalLayout stacks children in a column aligned to the start edge.
func VerticalLayout(args ...any) *VNode {
	return Div(append([]any{Class("layout-vertical")}, args...)...)
}

// HorizontalLayout places children in a row.
func HorizontalLayout(args ...any) *VNode {
	return Div(append([]any{Class("layout-horizontal")}, args...)...)
}

// FlexLayout places children in a plain flex container.
func FlexLayout(args ...any) *VNode {
	return Div(append([]any{Class("layout-flex")}, args...)...)
}
