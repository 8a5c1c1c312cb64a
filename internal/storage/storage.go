// Package storage stores uploaded image files and hands back the URL they
// are served from. Paths passed to Delete are bucket-relative, e.g.
// "gallery/foo.png".
package storage

import "context"

type Storage interface {
	Upload(ctx context.Context, data []byte, folder, filename string) (string, error)
	Delete(ctx context.Context, path string) error
}
