// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/autocrud/internal/php"
	"github.com/example/autocrud/internal/ports/secondary"
)

// ModelCatalog implements secondary.ModelCatalog over a models directory.
type ModelCatalog struct {
	root   string
	parser *php.Parser
}

var _ secondary.ModelCatalog = (*ModelCatalog)(nil)

// NewModelCatalog creates a catalog rooted at the models directory.
func NewModelCatalog(root string) *ModelCatalog {
	return &ModelCatalog{root: root, parser: php.NewParser()}
}

// ListFiles returns every file below the models directory, relative to it,
// with "/" separators and the extension stripped. A missing directory has no files.
func (c *ModelCatalog) ListFiles(ctx context.Context) ([]string, error) {
	var files []string

	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == c.root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		files = append(files, strings.TrimSuffix(rel, filepath.Ext(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list models in %s: %w", c.root, err)
	}

	sort.Strings(files)
	return files, nil
}

// LoadClasses parses every .php file below the models directory.
// Files that cannot be read or parsed are left out.
func (c *ModelCatalog) LoadClasses(ctx context.Context) (map[string]*secondary.ClassRecord, error) {
	files, err := c.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	classes := make(map[string]*secondary.ClassRecord)
	for _, rel := range files {
		path := filepath.Join(c.root, filepath.FromSlash(rel)+".php")
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		parsed, err := c.parser.Parse(path, src)
		if err != nil {
			continue
		}

		for _, cls := range parsed.Classes {
			classes[cls.FQCN] = &secondary.ClassRecord{
				FQCN:     cls.FQCN,
				Parent:   cls.Parent,
				Abstract: cls.Abstract,
				Table:    cls.Table,
				File:     rel,
			}
		}
	}

	return classes, nil
}
