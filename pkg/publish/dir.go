package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DirTarget writes files under a local directory.
type DirTarget struct {
	Dir string
}

// NewDirTarget creates the directory if needed.
func NewDirTarget(dir string) (*DirTarget, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirTarget{Dir: dir}, nil
}

// Put writes the file through a temporary file and a rename, so readers
// never see a partial page.
func (d *DirTarget) Put(ctx context.Context, name, _ string, r io.Reader, _ int64) error {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("publish: name %q escapes the target directory", name)
	}
	path := filepath.Join(d.Dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (d *DirTarget) String() string {
	return d.Dir
}
