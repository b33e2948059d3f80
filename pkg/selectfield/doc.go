// Package selectfield provides Select, a generic dropdown widget.
//
// A Select is configured with a Config of optional function fields that
// decide how items are labelled, rendered and enabled:
//
//	sel := selectfield.New("department", selectfield.Config[data.Department]{
//		Label:     "Department",
//		ItemLabel: func(d data.Department) string { return d.Name },
//	}, departments...)
//
// The widget renders itself as a vdom tree. User selections arrive as
// option keys through Choose; programmatic changes go through SetValue
// and Clear. Both notify OnValueChange listeners when the value changes.
package selectfield
