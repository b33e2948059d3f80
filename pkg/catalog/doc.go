// Package catalog holds the demo registry: an ordered list of labelled
// cards, each with one or more renderable fragments, and the page body
// that presents them.
package catalog
