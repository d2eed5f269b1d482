package scaffold

import (
	"context"
	"strings"

	"github.com/example/autocrud/internal/core/model"
)

// ControllerInputs are the previously generated classes a controller wires together.
// Each value is a fully-qualified class name; Service and Resource may be empty.
type ControllerInputs struct {
	Type     string // "api" or "web"
	Request  string
	Resource string
	Service  string
}

// ControllerBuilder generates api or web resource controllers.
type ControllerBuilder struct {
	gen *Generator
}

// NewControllerBuilder creates a new ControllerBuilder.
func NewControllerBuilder(gen *Generator) *ControllerBuilder {
	return &ControllerBuilder{gen: gen}
}

// Spec returns the artifact spec for a model's controller.
func (b *ControllerBuilder) Spec(ref model.Reference, in ControllerInputs) ArtifactSpec {
	placeholders := b.gen.ModelPlaceholders(ref).
		Set(Token("modelPluralVariable"), ToCamelCase(Pluralize(ToSnakeCase(ref.ShortName)))).
		Set(Token("viewPath"), viewPath(ref)).
		Set(Token("routeName"), viewPath(ref))
	setClass(placeholders, "request", in.Request)
	setClass(placeholders, "resource", in.Resource)
	setClass(placeholders, "service", in.Service)

	stub := in.Type + ".controller"
	if in.Service != "" {
		stub = in.Type + ".service.controller"
	}

	dir := "Http/Controllers"
	if in.Type == model.TypeAPI {
		dir = "Http/Controllers/API"
	}

	return ArtifactSpec{
		Kind:         KindController,
		Stub:         stub,
		Dir:          dir,
		Suffix:       "Controller",
		Placeholders: placeholders,
	}
}

// Create generates the controller of a model.
func (b *ControllerBuilder) Create(ctx context.Context, ref model.Reference, in ControllerInputs, overwrite bool) (*GeneratedArtifact, error) {
	return b.gen.CreateFromStub(ctx, ref, b.Spec(ref, in), overwrite)
}

// setClass maps the short name, full name and variable tokens of a class reference.
func setClass(m *PlaceholderMap, name, fqcn string) {
	if fqcn == "" {
		return
	}
	short := model.LastSegment(fqcn)
	m.Set(Token(name), short).
		Set(Token(name+"Namespace"), fqcn).
		Set(Token(name+"Variable"), LowerFirst(short))
}

// viewPath returns the dotted view and route prefix of a model: "Blog/BlogPost" -> "blog.blog-posts".
func viewPath(ref model.Reference) string {
	var parts []string
	if ref.HasSubNamespace() {
		for _, seg := range strings.Split(ref.SubPath, "/") {
			parts = append(parts, ToKebabCase(seg))
		}
	}
	parts = append(parts, Pluralize(ToKebabCase(ref.ShortName)))
	return strings.Join(parts, ".")
}
