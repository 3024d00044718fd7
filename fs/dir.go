package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/docscrape"
)

// Ensure DirResolver implements docscrape.DirectoryResolver at compile time.
var _ docscrape.DirectoryResolver = (*DirResolver)(nil)

// DirResolver creates one output directory per domain under a base directory.
type DirResolver struct {
	baseDir string
}

// NewDirResolver creates a new DirResolver. An empty baseDir resolves
// directories relative to the working directory.
func NewDirResolver(baseDir string) *DirResolver {
	return &DirResolver{baseDir: baseDir}
}

// ResolveDir creates baseDir/<sanitized domain> if needed and returns it.
// Returns the URL error if targetURL has no domain and EDIRECTORY if the
// directory cannot be created.
func (r *DirResolver) ResolveDir(targetURL string) (string, error) {
	domain, err := docscrape.Domain(targetURL)
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.baseDir, docscrape.SanitizeFilename(domain))
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", docscrape.WrapError(docscrape.EDIRECTORY, err, "failed to create output directory %s", path)
	}
	return path, nil
}
