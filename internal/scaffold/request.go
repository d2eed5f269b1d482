package scaffold

import (
	"context"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/ports/secondary"
)

// RequestBuilder generates FormRequest classes with validation rules derived from the table.
type RequestBuilder struct {
	gen *Generator
}

// NewRequestBuilder creates a new RequestBuilder.
func NewRequestBuilder(gen *Generator) *RequestBuilder {
	return &RequestBuilder{gen: gen}
}

// Spec returns the artifact spec for a model's form request.
func (b *RequestBuilder) Spec(ref model.Reference, columns []secondary.ColumnRecord) ArtifactSpec {
	return ArtifactSpec{
		Kind:         KindRequest,
		Stub:         "request",
		Dir:          "Http/Requests",
		Suffix:       "Request",
		Placeholders: b.gen.ModelPlaceholders(ref).Set(Token("rules"), validationRules(columns)),
	}
}

// Create generates the form request of a model. An empty column list yields an empty rule set.
func (b *RequestBuilder) Create(ctx context.Context, ref model.Reference, columns []secondary.ColumnRecord, overwrite bool) (*GeneratedArtifact, error) {
	return b.gen.CreateFromStub(ctx, ref, b.Spec(ref, columns), overwrite)
}
