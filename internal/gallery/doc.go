// Package gallery builds the select demo catalog: nine cards showing
// basic usage, entity lists, disabled items, disabled and read-only
// widgets, validation, separators, custom option content and styling
// references.
//
// A Gallery owns live widget instances, so each browser session gets its
// own. Servers feed user events back through HandleChange and Submit.
package gallery
