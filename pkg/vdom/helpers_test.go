package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Selected: %s", "Pedro")

	if node.Text != "Selected: Pedro" {
		t.Errorf("Text = %v, want 'Selected: Pedro'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<svg></svg>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
	if node.Text != "<svg></svg>" {
		t.Errorf("Text = %v, want '<svg></svg>'", node.Text)
	}
}

func TestFragment(t *testing.T) {
	node := Fragment(Text("a"), nil, "b", []*VNode{Span(), nil})

	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Errorf("Children len = %v, want 3", len(node.Children))
	}
}

func TestIf(t *testing.T) {
	n := Span()
	if If(true, n) != n {
		t.Error("If(true) should return node")
	}
	if If(false, n) != nil {
		t.Error("If(false) should return nil")
	}
	a, b := Span(), Div()
	if IfElse(false, a, b) != b {
		t.Error("IfElse(false) should return second node")
	}
}

func TestRange(t *testing.T) {
	items := []string{"Jose", "", "Pedro"}
	nodes := Range(items, func(_ int, s string) *VNode {
		if s == "" {
			return nil
		}
		return Li(Text(s))
	})

	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[1].TextContent() != "Pedro" {
		t.Errorf("nodes[1] = %q, want Pedro", nodes[1].TextContent())
	}
}
