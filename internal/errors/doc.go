// Package errors provides structured, actionable errors for the select
// demo tooling.
//
// Each error has a registered code (e.g., "SD121") with a category, a
// short message and a longer explanation. Errors about a file can carry
// its location and the surrounding lines:
//
//	err := errors.New(errors.CodeDataParse).
//	    WithLocation("data.hcl", 4, 3).
//	    WithSuggestion(`Each department block needs a name: department "Sales" {}`)
//
//	errors.Fprint(os.Stderr, err)
//
// Widget misuse is reported with plain sentinel errors in the widget
// packages; this package covers configuration, data, export, server and
// command-line failures.
package errors
