// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// ModelCatalog defines the secondary port for reading the models source tree.
type ModelCatalog interface {
	// ListFiles returns every file below the models path, relative to it,
	// with "/" separators and the extension stripped (e.g. "Blog/Post").
	ListFiles(ctx context.Context) ([]string, error)

	// LoadClasses parses the model files and returns the declared classes keyed by
	// fully-qualified class name. Files that cannot be parsed are left out.
	LoadClasses(ctx context.Context) (map[string]*ClassRecord, error)
}

// ClassRecord represents a PHP class declaration found in the models tree.
type ClassRecord struct {
	FQCN     string // App\Models\Blog\Post
	Parent   string // Fully-qualified parent class, empty when none
	Abstract bool
	Table    string // Declared $table, empty when the convention applies
	File     string // Relative file the class was found in ("Blog/Post")
}

// PackageProbe defines the secondary port for checking installed composer packages.
type PackageProbe interface {
	// HasPackage reports whether the project requires the given composer package.
	HasPackage(ctx context.Context, name string) (bool, error)
}
