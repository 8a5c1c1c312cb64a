package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local writes uploads under baseDir and serves them from baseURL. Deletion
// is best-effort; a missing file is not an error.
type Local struct {
	baseDir string
	baseURL string
}

func NewLocal(baseDir string) *Local {
	return &Local{baseDir: baseDir, baseURL: "/uploads"}
}

func (l *Local) Upload(ctx context.Context, data []byte, folder, filename string) (string, error) {
	dir := filepath.Join(l.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return l.baseURL + "/" + folder + "/" + filename, nil
}

func (l *Local) Delete(ctx context.Context, path string) error {
	err := os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(path)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
