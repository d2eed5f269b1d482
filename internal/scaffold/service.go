package scaffold

import (
	"context"

	"github.com/example/autocrud/internal/core/model"
)

// ServiceBuilder generates service classes on top of a generated repository.
type ServiceBuilder struct {
	gen *Generator
}

// NewServiceBuilder creates a new ServiceBuilder.
func NewServiceBuilder(gen *Generator) *ServiceBuilder {
	return &ServiceBuilder{gen: gen}
}

// Spec returns the artifact spec for a model's service.
// repository is the fully-qualified class name of the model's repository.
func (b *ServiceBuilder) Spec(ref model.Reference, repository string) ArtifactSpec {
	short := model.LastSegment(repository)
	placeholders := b.gen.ModelPlaceholders(ref).
		Set(Token("repository"), short).
		Set(Token("repositoryNamespace"), repository).
		Set(Token("repositoryVariable"), LowerFirst(short))

	return ArtifactSpec{
		Kind:         KindService,
		Stub:         "service",
		Dir:          "Services",
		Suffix:       "Service",
		Placeholders: placeholders,
	}
}

// Create generates the service of a model.
func (b *ServiceBuilder) Create(ctx context.Context, ref model.Reference, repository string, overwrite bool) (*GeneratedArtifact, error) {
	return b.gen.CreateFromStub(ctx, ref, b.Spec(ref, repository), overwrite)
}
