package scaffold

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/errs"
	"github.com/example/autocrud/internal/ports/secondary"
)

// Generator renders stubs into files. Builders share one Generator.
type Generator struct {
	layout Layout
	models model.Context
	stubs  secondary.StubSource
	writer secondary.ArtifactWriter
}

// NewGenerator creates a new Generator.
func NewGenerator(layout Layout, models model.Context, stubs secondary.StubSource, writer secondary.ArtifactWriter) *Generator {
	return &Generator{
		layout: layout,
		models: models,
		stubs:  stubs,
		writer: writer,
	}
}

// Target returns the destination path, namespace and class name of an artifact
// for a model, without rendering anything.
func (g *Generator) Target(ref model.Reference, spec ArtifactSpec) (path, namespace, className string) {
	className = ref.ShortName + spec.Suffix
	namespace = model.JoinNamespace(
		g.layout.AppNamespace,
		strings.ReplaceAll(spec.Dir, "/", model.NamespaceSeparator),
		ref.SubNamespace,
	)
	path = filepath.Join(
		g.layout.AppPath,
		filepath.FromSlash(spec.Dir),
		filepath.FromSlash(ref.SubPath),
		className+".php",
	)
	return path, namespace, className
}

// CreateFromStub renders spec's stub for a model and writes it to its destination.
//
// An existing destination is preserved unless overwrite is set; the artifact
// is still returned so callers can report the path and chain on the class name.
func (g *Generator) CreateFromStub(ctx context.Context, ref model.Reference, spec ArtifactSpec, overwrite bool) (*GeneratedArtifact, error) {
	path, namespace, className := g.Target(ref, spec)
	artifact := &GeneratedArtifact{
		Kind:      spec.Kind,
		Path:      path,
		ClassName: model.JoinNamespace(namespace, className),
		Namespace: namespace,
	}

	stub, err := g.stubs.Load(ctx, spec.Stub)
	if err != nil {
		return nil, err
	}

	exists, err := g.writer.Exists(ctx, path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrIO, err, "failed to check %s", path)
	}
	if exists && !overwrite {
		return artifact, nil
	}

	placeholders := NewPlaceholderMap().
		Set(Token("namespace"), namespace).
		Set(Token("class"), className).
		Merge(spec.Placeholders)

	content := Render(stub, placeholders)
	if err := g.writer.Write(ctx, path, content); err != nil {
		return nil, errs.Wrap(errs.ErrIO, err, "failed to write %s", path)
	}

	artifact.Content = content
	artifact.Written = true
	return artifact, nil
}

// ModelPlaceholders returns the tokens every builder shares:
// the model's fully-qualified name, its class name and its variable name.
func (g *Generator) ModelPlaceholders(ref model.Reference) *PlaceholderMap {
	return NewPlaceholderMap().
		Set(Token("modelNamespace"), g.models.FullyQualified(ref)).
		Set(Token("model"), ref.ShortName).
		Set(Token("modelVariable"), LowerFirst(ref.ShortName))
}
