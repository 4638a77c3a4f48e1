package reader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// FS reads feeds from a file system, typically the site directory.
type FS struct {
	FS fs.FS
}

// Dir returns an FS reader rooted at dir.
func Dir(dir string) *FS {
	return &FS{FS: os.DirFS(dir)}
}

// Open opens name relative to the root. Leading "./" and "/" are ignored so
// names written as page-relative paths resolve the same way.
func (r *FS) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := path.Clean(strings.TrimPrefix(strings.TrimPrefix(name, "./"), "/"))
	f, err := r.FS.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("open feed %s: %w", name, err)
	}
	return f, nil
}
