package scaffold

import (
	"context"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/ports/secondary"
)

// ResourceBuilder generates API resource classes.
type ResourceBuilder struct {
	gen *Generator
}

// NewResourceBuilder creates a new ResourceBuilder.
func NewResourceBuilder(gen *Generator) *ResourceBuilder {
	return &ResourceBuilder{gen: gen}
}

// Spec returns the artifact spec for a model's API resource.
func (b *ResourceBuilder) Spec(ref model.Reference, columns []secondary.ColumnRecord) ArtifactSpec {
	return ArtifactSpec{
		Kind:         KindResource,
		Stub:         "resource",
		Dir:          "Http/Resources",
		Suffix:       "Resource",
		Placeholders: b.gen.ModelPlaceholders(ref).Set(Token("fields"), resourceFields(columns)),
	}
}

// Create generates the API resource of a model.
func (b *ResourceBuilder) Create(ctx context.Context, ref model.Reference, columns []secondary.ColumnRecord, overwrite bool) (*GeneratedArtifact, error) {
	return b.gen.CreateFromStub(ctx, ref, b.Spec(ref, columns), overwrite)
}
