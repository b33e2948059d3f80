package catalog

import (
	"github.com/vango-dev/selectdemo/pkg/vdom"
)

// Render builds the catalog body: a navigation list of groups and one
// section per card. The group heading is emitted once, above the first
// card of each group.
func (r *Registry) Render() *vdom.VNode {
	groups := r.Groups()

	nav := vdom.Nav(
		vdom.Class("catalog-nav"),
		vdom.AriaLabel("Demos"),
		vdom.Ul(vdom.Range(groups, func(_ int, g Group) *vdom.VNode {
			return vdom.Li(
				vdom.A(vdom.Href("#"+g.Cards[0].Anchor), g.Label),
				vdom.If(hasSubLabels(g), vdom.Ul(vdom.Range(g.Cards, func(_ int, c Card) *vdom.VNode {
					if c.SubLabel == "" {
						return nil
					}
					return vdom.Li(vdom.A(vdom.Href("#"+c.Anchor), c.SubLabel))
				}))),
			)
		})),
	)

	var sections []*vdom.VNode
	for _, g := range groups {
		for i, c := range g.Cards {
			sections = append(sections, renderCard(c, i == 0))
		}
	}

	return vdom.Div(
		vdom.Class("catalog"),
		nav,
		vdom.Main(vdom.Class("catalog-cards"), sections),
	)
}

// Content builds the fragment container of a card. Live updates replace
// it in place, keyed by the card anchor.
func (c Card) Content() *vdom.VNode {
	return vdom.Div(
		vdom.Class("card-content"),
		vdom.Data("card-content", c.Anchor),
		c.Fragments,
	)
}

func renderCard(c Card, withGroupHeading bool) *vdom.VNode {
	return vdom.Section(
		vdom.ID(c.Anchor),
		vdom.Class("card"),
		vdom.Data("card", c.Anchor),
		vdom.If(withGroupHeading, vdom.H2(vdom.Class("card-group"), c.GroupLabel)),
		vdom.If(c.SubLabel != "", vdom.H3(vdom.Class("card-sub"), c.SubLabel)),
		c.Content(),
		vdom.If(c.Source != "", vdom.Pre(vdom.Class("card-source"), vdom.Code(c.Source))),
	)
}

func hasSubLabels(g Group) bool {
	for _, c := range g.Cards {
		if c.SubLabel != "" {
			return true
		}
	}
	return false
}
