package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/autocrud/internal/ports/secondary"
)

// ComposerProbe implements secondary.PackageProbe by reading composer.json,
// composer.lock and the vendor directory of the project.
type ComposerProbe struct {
	root string
}

var _ secondary.PackageProbe = (*ComposerProbe)(nil)

// NewComposerProbe creates a probe for the project directory.
func NewComposerProbe(root string) *ComposerProbe {
	return &ComposerProbe{root: root}
}

type composerManifest struct {
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}

type composerLock struct {
	Packages    []composerPackage `json:"packages"`
	PackagesDev []composerPackage `json:"packages-dev"`
}

type composerPackage struct {
	Name string `json:"name"`
}

// HasPackage reports whether the project requires or has installed the package.
func (p *ComposerProbe) HasPackage(ctx context.Context, name string) (bool, error) {
	var manifest composerManifest
	found, err := p.readJSON("composer.json", &manifest)
	if err != nil {
		return false, err
	}
	if found {
		if _, ok := manifest.Require[name]; ok {
			return true, nil
		}
		if _, ok := manifest.RequireDev[name]; ok {
			return true, nil
		}
	}

	var lock composerLock
	found, err = p.readJSON("composer.lock", &lock)
	if err != nil {
		return false, err
	}
	if found {
		for _, pkg := range append(lock.Packages, lock.PackagesDev...) {
			if pkg.Name == name {
				return true, nil
			}
		}
	}

	info, err := os.Stat(filepath.Join(p.root, "vendor", filepath.FromSlash(name)))
	if err == nil && info.IsDir() {
		return true, nil
	}

	return false, nil
}

func (p *ComposerProbe) readJSON(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(p.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}
