package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/autocrud/internal/ports/secondary"
)

// ArtifactWriter implements secondary.ArtifactWriter, resolving relative
// paths against the project root.
type ArtifactWriter struct {
	root string
}

var _ secondary.ArtifactWriter = (*ArtifactWriter)(nil)

// NewArtifactWriter creates a writer rooted at the project directory.
func NewArtifactWriter(root string) *ArtifactWriter {
	return &ArtifactWriter{root: root}
}

// Exists reports whether a file already exists at path.
func (w *ArtifactWriter) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(w.abs(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Write creates parent directories and writes content to path in one shot.
func (w *ArtifactWriter) Write(ctx context.Context, path, content string) error {
	target := w.abs(path)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (w *ArtifactWriter) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.root, filepath.FromSlash(path))
}
