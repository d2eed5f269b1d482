// Package scaffold renders Laravel CRUD classes from stub templates.
package scaffold

import "github.com/example/autocrud/internal/core/model"

// Artifact kinds.
const (
	KindRepository = "repository"
	KindService    = "service"
	KindRequest    = "request"
	KindResource   = "resource"
	KindData       = "data"
	KindController = "controller"
)

// Layout describes where generated classes live in the Laravel project.
type Layout struct {
	AppPath      string // Filesystem root of the application namespace: "app"
	AppNamespace string // Namespace of AppPath: "App"
}

// DefaultLayout returns the layout of a stock Laravel application.
func DefaultLayout() Layout {
	return Layout{AppPath: "app", AppNamespace: "App"}
}

// ArtifactSpec describes one artifact kind to render.
type ArtifactSpec struct {
	Kind         string
	Stub         string          // Stub name: "repository", "api.controller"
	Dir          string          // Slash-separated directory below AppPath: "Http/Controllers"
	Suffix       string          // Class name suffix: "Repository"
	Placeholders *PlaceholderMap // Kind-specific tokens
}

// GeneratedArtifact is the outcome of one render.
type GeneratedArtifact struct {
	Kind      string
	Path      string // Destination file path
	ClassName string // Fully-qualified class name: App\Repositories\PostRepository
	Namespace string // Namespace of the class: App\Repositories
	Content   string // Rendered content, empty when the file was preserved
	Written   bool   // False when an existing file was preserved
}

// ShortName returns the class name without its namespace.
func (a *GeneratedArtifact) ShortName() string {
	return model.LastSegment(a.ClassName)
}
