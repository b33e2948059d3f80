package assets

// Resolver turns a logical asset name into the URL path a page links to.
type Resolver interface {
	// Asset resolves a logical asset name to its full URL path.
	//
	// Example:
	//   resolver.Asset("client.js") → "/_selectdemo/client.3f2a9c1d.js"
	Asset(name string) string
}

// bundleResolver prefixes fingerprinted bundle names.
type bundleResolver struct {
	bundle *Bundle
	prefix string
}

// NewResolver creates a Resolver that links fingerprinted names under
// prefix. Common prefixes:
//   - "/_selectdemo/" - served by the demo server
//   - "" - relative to the page, used by static export
func NewResolver(b *Bundle, prefix string) Resolver {
	return &bundleResolver{bundle: b, prefix: prefix}
}

func (r *bundleResolver) Asset(name string) string {
	return r.prefix + r.bundle.Resolve(name)
}

// passthrough links logical names unchanged.
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that does not fingerprint.
// Development servers use it so edits show up without cache busting.
//
//	resolver := assets.NewPassthroughResolver("/_selectdemo/")
//	resolver.Asset("client.js") // "/_selectdemo/client.js"
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(name string) string {
	return p.prefix + name
}
