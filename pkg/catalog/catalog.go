package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vango-dev/selectdemo/pkg/vdom"
)

// Card is one labelled demo in the catalog.
type Card struct {
	GroupLabel string
	SubLabel   string // optional
	Fragments  []*vdom.VNode

	// Anchor is the page fragment id of the card, unique in its registry.
	Anchor string

	// Source is the example code shown under the card, if any.
	Source string
}

// Title returns "Group / Sub" or just the group label.
func (c Card) Title() string {
	if c.SubLabel == "" {
		return c.GroupLabel
	}
	return c.GroupLabel + " / " + c.SubLabel
}

// Option configures a card at registration.
type Option func(*Card)

// WithSource attaches an example source snippet to the card.
func WithSource(snippet string) Option {
	return func(c *Card) { c.Source = strings.TrimSpace(snippet) }
}

// Registry is an append-only, ordered list of cards.
type Registry struct {
	cards   []Card
	anchors map[string]bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{anchors: make(map[string]bool)}
}

// Register appends a card. Arguments after the labels may be *vdom.VNode
// or vdom.Component fragments (components render lazily, each time the
// catalog is rendered) and Options. nil fragments are skipped.
//
// Register panics if groupLabel is blank, if no fragment remains or if
// an argument has an unsupported type: cards are built from literals, so
// these are programming errors.
func (r *Registry) Register(groupLabel, subLabel string, args ...any) {
	if strings.TrimSpace(groupLabel) == "" {
		panic("catalog: Register with empty group label")
	}

	card := Card{GroupLabel: groupLabel, SubLabel: subLabel}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Option:
			v(&card)
		case *vdom.VNode:
			if v != nil {
				card.Fragments = append(card.Fragments, v)
			}
		case vdom.Component:
			if n := vdom.Embed(v); n != nil {
				card.Fragments = append(card.Fragments, n)
			}
		default:
			panic(fmt.Sprintf("catalog: unsupported argument %T for card %q", arg, card.Title()))
		}
	}
	if len(card.Fragments) == 0 {
		panic(fmt.Sprintf("catalog: card %q has no fragments", card.Title()))
	}

	if r.anchors == nil {
		r.anchors = make(map[string]bool)
	}
	card.Anchor = r.uniqueAnchor(slug(groupLabel, subLabel))
	r.cards = append(r.cards, card)
}

// Cards returns the cards in registration order.
func (r *Registry) Cards() []Card {
	out := make([]Card, len(r.cards))
	for i, c := range r.cards {
		c.Fragments = append([]*vdom.VNode(nil), c.Fragments...)
		out[i] = c
	}
	return out
}

// Len returns the number of registered cards.
func (r *Registry) Len() int {
	return len(r.cards)
}

// Group is a run of consecutive cards sharing a group label.
type Group struct {
	Label string
	Cards []Card
}

// Groups folds consecutive cards with the same group label. A label that
// reappears later starts a new group, keeping registration order intact.
func (r *Registry) Groups() []Group {
	var groups []Group
	for _, c := range r.Cards() {
		if n := len(groups); n > 0 && groups[n-1].Label == c.GroupLabel {
			groups[n-1].Cards = append(groups[n-1].Cards, c)
			continue
		}
		groups = append(groups, Group{Label: c.GroupLabel, Cards: []Card{c}})
	}
	return groups
}

func (r *Registry) uniqueAnchor(base string) string {
	anchor := base
	for i := 2; r.anchors[anchor]; i++ {
		anchor = base + "-" + strconv.Itoa(i)
	}
	r.anchors[anchor] = true
	return anchor
}

// slug lowercases the labels and joins their alphanumeric runs with '-'.
func slug(labels ...string) string {
	var b strings.Builder
	dash := false
	for _, l := range labels {
		for _, r := range strings.ToLower(l) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				if dash && b.Len() > 0 {
					b.WriteByte('-')
				}
				dash = false
				b.WriteRune(r)
				continue
			}
			dash = true
		}
		dash = true
	}
	if b.Len() == 0 {
		return "card"
	}
	return b.String()
}
