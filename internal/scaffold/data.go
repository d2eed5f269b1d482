package scaffold

import (
	"context"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/ports/secondary"
)

// DataBuilder generates spatie/laravel-data objects.
type DataBuilder struct {
	gen *Generator
}

// NewDataBuilder creates a new DataBuilder.
func NewDataBuilder(gen *Generator) *DataBuilder {
	return &DataBuilder{gen: gen}
}

// Spec returns the artifact spec for a model's data object.
func (b *DataBuilder) Spec(ref model.Reference, columns []secondary.ColumnRecord) ArtifactSpec {
	return ArtifactSpec{
		Kind:         KindData,
		Stub:         "data",
		Dir:          "Data",
		Suffix:       "Data",
		Placeholders: b.gen.ModelPlaceholders(ref).Set(Token("properties"), dataProperties(columns)),
	}
}

// Create generates the data object of a model.
func (b *DataBuilder) Create(ctx context.Context, ref model.Reference, columns []secondary.ColumnRecord, overwrite bool) (*GeneratedArtifact, error) {
	return b.gen.CreateFromStub(ctx, ref, b.Spec(ref, columns), overwrite)
}
