package assets

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"mime"
	"path"
	"sort"
	"strings"
)

//go:embed static
var staticFS embed.FS

// File is one embedded static asset.
type File struct {
	Name          string // logical name, e.g. "client.js"
	Fingerprinted string // e.g. "client.3f2a9c1d.js"
	ContentType   string
	Data          []byte
}

// Bundle is the set of embedded assets with their fingerprinted names.
// It is immutable after Load and safe for concurrent use.
type Bundle struct {
	byName map[string]*File
	byPath map[string]*File
}

// Load reads the embedded assets and fingerprints them by content.
func Load() (*Bundle, error) {
	b := &Bundle{
		byName: make(map[string]*File),
		byPath: make(map[string]*File),
	}
	err := fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := staticFS.ReadFile(p)
		if err != nil {
			return err
		}
		b.add(path.Base(p), data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// MustLoad is like Load but panics on error. The assets are compiled in,
// so an error means a broken build.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic("assets: " + err.Error())
	}
	return b
}

func (b *Bundle) add(name string, data []byte) {
	sum := sha256.Sum256(data)
	ext := path.Ext(name)
	f := &File{
		Name:          name,
		Fingerprinted: strings.TrimSuffix(name, ext) + "." + hex.EncodeToString(sum[:4]) + ext,
		ContentType:   contentType(ext),
		Data:          data,
	}
	b.byName[f.Name] = f
	b.byPath[f.Fingerprinted] = f
}

// Resolve returns the fingerprinted name for a logical asset name.
// Unknown names are returned unchanged.
func (b *Bundle) Resolve(name string) string {
	if f, ok := b.byName[name]; ok {
		return f.Fingerprinted
	}
	return name
}

// Lookup finds an asset by logical or fingerprinted name. The second
// result reports whether the name was fingerprinted, i.e. immutable.
func (b *Bundle) Lookup(name string) (f *File, immutable bool, ok bool) {
	if f, ok := b.byPath[name]; ok {
		return f, true, true
	}
	if f, ok := b.byName[name]; ok {
		return f, false, true
	}
	return nil, false, false
}

// Files returns every asset sorted by logical name.
func (b *Bundle) Files() []*File {
	out := make([]*File, 0, len(b.byName))
	for _, f := range b.byName {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Manifest returns the logical to fingerprinted name mapping.
func (b *Bundle) Manifest() map[string]string {
	m := make(map[string]string, len(b.byName))
	for name, f := range b.byName {
		m[name] = f.Fingerprinted
	}
	return m
}

func contentType(ext string) string {
	switch ext {
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
