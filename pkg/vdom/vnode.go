package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <select>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Rendered lazily at render time
	KindRaw                    // Raw HTML (trusted markup only)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node of the server-side UI tree.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      string    // Stable identity within siblings
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode. Components embedded
// in a tree are rendered when the tree is rendered, not when it is built,
// so stateful widgets always show their current state.
type Component interface {
	Render() *VNode
}

// Render implements Component so static nodes and widgets can be mixed.
func (v *VNode) Render() *VNode {
	return v
}

// Embed wraps a component in a lazily rendered node.
func Embed(c Component) *VNode {
	if c == nil {
		return nil
	}
	if n, ok := c.(*VNode); ok {
		return n
	}
	return &VNode{Kind: KindComponent, Comp: c}
}

// Resolve renders a KindComponent node; other nodes are returned as is.
func (v *VNode) Resolve() *VNode {
	for v != nil && v.Kind == KindComponent {
		if v.Comp == nil {
			return nil
		}
		v = v.Comp.Render()
	}
	return v
}

// ComponentFunc adapts a render function to Component.
type ComponentFunc func() *VNode

// Render implements Component.
func (f ComponentFunc) Render() *VNode {
	return f()
}

// Attr returns the attribute value for key as a string, or "" if unset.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Props == nil {
		return ""
	}
	switch val := v.Props[key].(type) {
	case string:
		return val
	case nil:
		return ""
	case bool:
		if val {
			return key
		}
		return ""
	default:
		return ""
	}
}

// HasAttr reports whether a boolean attribute is set to true or a value
// attribute is present.
func (v *VNode) HasAttr(key string) bool {
	if v == nil || v.Props == nil {
		return false
	}
	val, ok := v.Props[key]
	if !ok {
		return false
	}
	if b, isBool := val.(bool); isBool {
		return b
	}
	return true
}

// TextContent returns the concatenated text of the node and its descendants.
func (v *VNode) TextContent() string {
	var b strings.Builder
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// Walk visits the node and its descendants depth-first, rendering
// components on the way. Returning false from fn skips the node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	v = v.Resolve()
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	for _, child := range v.Children {
		child.Walk(fn)
	}
}

// FindAll returns every descendant (including v) matching pred.
func (v *VNode) FindAll(pred func(*VNode) bool) []*VNode {
	var out []*VNode
	v.Walk(func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByTag is a FindAll predicate matching element tag names.
func ByTag(tag string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByClass is a FindAll predicate matching elements carrying class.
func ByClass(class string) func(*VNode) bool {
	return func(n *VNode) bool {
		if n.Kind != KindElement {
			return false
		}
		for _, c := range strings.Fields(n.Attr("class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}
