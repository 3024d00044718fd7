package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

// Compile-time interface verification.
var (
	_ docscrape.DirectoryResolver = (*DirectoryResolver)(nil)
	_ docscrape.PageWriter        = (*PageWriter)(nil)
)

// DirectoryResolver is a mock implementation of docscrape.DirectoryResolver.
type DirectoryResolver struct {
	ResolveDirFn func(targetURL string) (string, error)
}

func (r *DirectoryResolver) ResolveDir(targetURL string) (string, error) {
	return r.ResolveDirFn(targetURL)
}

// PageWriter is a mock implementation of docscrape.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, dir string, page *docscrape.Page) (string, error)
}

func (w *PageWriter) WritePage(ctx context.Context, dir string, page *docscrape.Page) (string, error) {
	return w.WritePageFn(ctx, dir, page)
}
