package selectfield

import (
	"github.com/vango-dev/selectdemo/pkg/vdom"
)

// Render builds the widget markup for its current state. Select implements
// vdom.Component, so embedding it in a layout re-renders it on every page
// render.
//
// Without a custom renderer the widget is a native <select>; with one it
// is a radio listbox so option content may contain markup. Both post the
// chosen option key under the widget id.
func (s *Select[T]) Render() *vdom.VNode {
	var control *vdom.VNode
	if s.cfg.Render != nil {
		control = s.renderListbox()
	} else {
		control = s.renderNative()
	}

	return vdom.Div(
		vdom.Class("select-field"),
		vdom.ClassIf(s.cfg.Disabled, "is-disabled"),
		vdom.ClassIf(s.cfg.ReadOnly, "is-readonly"),
		vdom.ClassIf(s.requiredIndicator, "is-required"),
		vdom.ClassIf(s.Invalid(), "is-invalid"),
		vdom.ID(s.id+"-field"),
		vdom.Data("widget", s.id),
		control,
		vdom.If(s.Invalid(), vdom.Small(
			vdom.Class("select-error"),
			vdom.ID(s.errorID()),
			vdom.Role("alert"),
			vdom.Text(s.errorMessage),
		)),
	)
}

func (s *Select[T]) renderNative() *vdom.VNode {
	var children []*vdom.VNode
	if s.cfg.Placeholder != "" && !s.cfg.EmptySelectionAllowed {
		children = append(children, vdom.Option(
			vdom.Value(EmptyKey),
			vdom.Disabled(),
			vdom.Hidden(),
			vdom.AttrIf(!s.hasValue, vdom.Selected()),
			vdom.Text(s.cfg.Placeholder),
		))
	}
	for _, opt := range s.Options() {
		if opt.Kind == OptionSeparator {
			children = append(children, vdom.Hr(vdom.Class("select-separator")))
			continue
		}
		children = append(children, vdom.Option(
			vdom.Value(opt.Key),
			vdom.AttrIf(!opt.Enabled, vdom.Disabled()),
			vdom.AttrIf(opt.Selected, vdom.Selected()),
			vdom.ClassIf(opt.Kind == OptionEmpty, "select-empty"),
			vdom.Text(opt.Text),
		))
	}

	return vdom.Fragment(
		s.renderLabel(vdom.Label(vdom.For(s.id))),
		vdom.Select(
			vdom.ID(s.id),
			vdom.Name(s.id),
			vdom.Class("select-input"),
			vdom.AttrIf(s.cfg.Disabled || s.cfg.ReadOnly, vdom.Disabled()),
			vdom.AttrIf(s.cfg.ReadOnly, vdom.AriaReadonly(true)),
			vdom.AttrIf(s.requiredIndicator, vdom.AriaRequired(true)),
			vdom.AttrIf(s.Invalid(), vdom.AriaInvalid(true)),
			vdom.AttrIf(s.Invalid(), vdom.AriaDescribedBy(s.errorID())),
			vdom.AttrIf(s.cfg.Placeholder != "", vdom.Data("placeholder", s.cfg.Placeholder)),
			children,
		),
		// Disabled controls are not submitted; keep a read-only value in forms.
		vdom.If(s.cfg.ReadOnly && s.hasValue, vdom.Input(vdom.Type("hidden"), vdom.Name(s.id), vdom.Value(s.SelectedKey()))),
	)
}

func (s *Select[T]) renderListbox() *vdom.VNode {
	locked := s.cfg.Disabled || s.cfg.ReadOnly
	var children []*vdom.VNode
	for _, opt := range s.Options() {
		if opt.Kind == OptionSeparator {
			children = append(children, vdom.Hr(vdom.Class("select-separator")))
			continue
		}

		var content *vdom.VNode
		if opt.Kind == OptionItem {
			content = s.cfg.Render(opt.Item)
		} else {
			content = vdom.Span(vdom.Text(opt.Text))
		}

		children = append(children, vdom.Label(
			vdom.Class("select-option"),
			vdom.ClassIf(!opt.Enabled, "is-disabled"),
			vdom.ClassIf(opt.Selected, "is-selected"),
			vdom.Input(
				vdom.Type("radio"),
				vdom.Name(s.id),
				vdom.Value(opt.Key),
				vdom.AttrIf(opt.Selected, vdom.Checked()),
				vdom.AttrIf(!opt.Enabled || locked, vdom.Disabled()),
			),
			content,
		))
	}

	return vdom.Fieldset(
		vdom.ID(s.id),
		vdom.Class("select-listbox"),
		vdom.Role("radiogroup"),
		vdom.AttrIf(locked, vdom.AriaDisabled(true)),
		vdom.AttrIf(s.requiredIndicator, vdom.AriaRequired(true)),
		vdom.AttrIf(s.Invalid(), vdom.AriaInvalid(true)),
		s.renderLabel(vdom.Legend()),
		vdom.If(!s.hasValue && s.cfg.Placeholder != "", vdom.Span(vdom.Class("select-placeholder"), vdom.Text(s.cfg.Placeholder))),
		children,
	)
}

func (s *Select[T]) renderLabel(node *vdom.VNode) *vdom.VNode {
	if s.cfg.Label == "" {
		return nil
	}
	node.Props["class"] = "select-label"
	node.Children = append(node.Children, vdom.Text(s.cfg.Label))
	if s.requiredIndicator {
		node.Children = append(node.Children,
			vdom.Span(vdom.Class("required-indicator"), vdom.AriaHidden(true), vdom.Text("*")))
	}
	return node
}

func (s *Select[T]) errorID() string {
	return s.id + "-error"
}
