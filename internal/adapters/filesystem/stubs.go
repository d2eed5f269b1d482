package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/autocrud/internal/errs"
	"github.com/example/autocrud/internal/ports/secondary"
	"github.com/example/autocrud/internal/templates"
)

// StubSource implements secondary.StubSource. Stubs published to the override
// directory win over the embedded defaults.
type StubSource struct {
	dir string
}

var _ secondary.StubSource = (*StubSource)(nil)

// NewStubSource creates a stub source with the given override directory.
func NewStubSource(dir string) *StubSource {
	return &StubSource{dir: dir}
}

// Load returns the content of the named stub.
func (s *StubSource) Load(ctx context.Context, name string) (string, error) {
	if s.dir != "" {
		content, err := os.ReadFile(filepath.Join(s.dir, name+templates.StubExt))
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", errs.Wrap(errs.ErrIO, err, "failed to read stub %s", name)
		}
	}

	content, err := templates.GetStub(name)
	if err != nil {
		return "", errs.Wrap(errs.ErrTemplateNotFound, nil, "stub %q", name)
	}
	return content, nil
}

// Publish copies the embedded stubs into the override directory and returns the
// written paths. Existing stubs are kept unless force is set.
func (s *StubSource) Publish(ctx context.Context, force bool) (written, kept []string, err error) {
	names, err := templates.StubNames()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list stubs: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, nil, errs.Wrap(errs.ErrIO, err, "failed to create %s", s.dir)
	}

	for _, name := range names {
		path := filepath.Join(s.dir, name+templates.StubExt)
		if _, statErr := os.Stat(path); statErr == nil && !force {
			kept = append(kept, path)
			continue
		}

		content, err := templates.GetStub(name)
		if err != nil {
			return written, kept, err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return written, kept, errs.Wrap(errs.ErrIO, err, "failed to write %s", path)
		}
		written = append(written, path)
	}

	return written, kept, nil
}
