// Package assets embeds the demo's client script and stylesheet and
// resolves them to content-fingerprinted names:
//
//	bundle := assets.MustLoad()
//	resolver := assets.NewResolver(bundle, "/_selectdemo/")
//
//	Script(Src(resolver.Asset("client.js")), Defer())
//	// <script defer src="/_selectdemo/client.3f2a9c1d.js">
//
// Fingerprinted names are immutable and may be cached forever; logical
// names stay available for development.
package assets
