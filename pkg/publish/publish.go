package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/internal/site"
	"github.com/vango-dev/selectdemo/pkg/assets"
)

// Target receives exported files.
type Target interface {
	// Put stores one file under a slash-separated relative name.
	Put(ctx context.Context, name, contentType string, r io.Reader, size int64) error

	// String describes the target for logs, e.g. "s3://bucket/prefix/".
	String() string
}

// Options configure an export.
type Options struct {
	Title  string
	Pretty bool

	// Fingerprint links assets by content hash. Good for CDNs with long
	// cache lifetimes.
	Fingerprint bool

	// Manifest also writes manifest.json mapping asset names.
	Manifest bool

	Logger *slog.Logger
}

// Result lists what an export wrote.
type Result struct {
	Files []string
	Bytes int64
}

// Export renders a static gallery built from deps once, with no server
// behind it, and writes index.html and the client assets to t. Forms in
// the page are checked by client.js instead of posting.
func Export(ctx context.Context, t Target, deps gallery.Deps, b *assets.Bundle, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	deps.Static = true
	g := gallery.New(deps)

	var resolver assets.Resolver = assets.NewPassthroughResolver("")
	if opts.Fingerprint {
		resolver = assets.NewResolver(b, "")
	}
	page, err := site.Render(g, site.Options{
		Title:  opts.Title,
		Assets: resolver,
		Pretty: opts.Pretty,
	})
	if err != nil {
		return Result{}, fmt.Errorf("render page: %w", err)
	}

	var res Result
	put := func(name, contentType string, data []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.Put(ctx, name, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
			return fmt.Errorf("write %s to %s: %w", name, t, err)
		}
		logger.Debug("exported file", "name", name, "bytes", len(data))
		res.Files = append(res.Files, name)
		res.Bytes += int64(len(data))
		return nil
	}

	if err := put("index.html", "text/html; charset=utf-8", page); err != nil {
		return res, err
	}
	for _, f := range b.Files() {
		name := f.Name
		if opts.Fingerprint {
			name = f.Fingerprinted
		}
		if err := put(name, f.ContentType, f.Data); err != nil {
			return res, err
		}
	}
	if opts.Manifest {
		m, err := json.MarshalIndent(b.Manifest(), "", "  ")
		if err != nil {
			return res, err
		}
		if err := put("manifest.json", "application/json", m); err != nil {
			return res, err
		}
	}

	logger.Info("export complete", "target", t.String(), "files", len(res.Files), "bytes", res.Bytes)
	return res, nil
}
