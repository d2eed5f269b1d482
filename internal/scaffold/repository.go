package scaffold

import (
	"context"

	"github.com/example/autocrud/internal/core/model"
)

// RepositoryBuilder generates repository classes.
type RepositoryBuilder struct {
	gen *Generator
}

// NewRepositoryBuilder creates a new RepositoryBuilder.
func NewRepositoryBuilder(gen *Generator) *RepositoryBuilder {
	return &RepositoryBuilder{gen: gen}
}

// Spec returns the artifact spec for a model's repository.
func (b *RepositoryBuilder) Spec(ref model.Reference) ArtifactSpec {
	return ArtifactSpec{
		Kind:         KindRepository,
		Stub:         "repository",
		Dir:          "Repositories",
		Suffix:       "Repository",
		Placeholders: b.gen.ModelPlaceholders(ref),
	}
}

// Create generates the repository of a model.
func (b *RepositoryBuilder) Create(ctx context.Context, ref model.Reference, overwrite bool) (*GeneratedArtifact, error) {
	return b.gen.CreateFromStub(ctx, ref, b.Spec(ref), overwrite)
}
