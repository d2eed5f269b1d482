package app

import (
	"context"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/ports/secondary"
	"github.com/example/autocrud/internal/scaffold"
)

// CRUDOptions selects which layers the chain generates for a model.
type CRUDOptions struct {
	Type       string // "api" or "web"
	Pattern    string // "" or "spatie-data"
	Repository bool
	Overwrite  bool
}

// CRUDGenerator runs the builder chain for a single model:
// [Data] -> [Repository -> Service] -> Request -> [Resource] -> Controller.
type CRUDGenerator struct {
	repository *scaffold.RepositoryBuilder
	service    *scaffold.ServiceBuilder
	request    *scaffold.RequestBuilder
	resource   *scaffold.ResourceBuilder
	data       *scaffold.DataBuilder
	controller *scaffold.ControllerBuilder
}

// NewCRUDGenerator creates the builder chain over a shared scaffold generator.
func NewCRUDGenerator(gen *scaffold.Generator) *CRUDGenerator {
	return &CRUDGenerator{
		repository: scaffold.NewRepositoryBuilder(gen),
		service:    scaffold.NewServiceBuilder(gen),
		request:    scaffold.NewRequestBuilder(gen),
		resource:   scaffold.NewResourceBuilder(gen),
		data:       scaffold.NewDataBuilder(gen),
		controller: scaffold.NewControllerBuilder(gen),
	}
}

// Generate runs the chain. The first failing artifact stops the chain; the
// artifacts produced before it are returned alongside the error.
func (g *CRUDGenerator) Generate(ctx context.Context, ref model.Reference, columns []secondary.ColumnRecord, opts CRUDOptions) ([]*scaffold.GeneratedArtifact, error) {
	var artifacts []*scaffold.GeneratedArtifact
	in := scaffold.ControllerInputs{Type: opts.Type}

	if opts.Pattern == model.PatternSpatieData {
		data, err := g.data.Create(ctx, ref, columns, opts.Overwrite)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, data)
	}

	if opts.Repository {
		repo, err := g.repository.Create(ctx, ref, opts.Overwrite)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, repo)

		svc, err := g.service.Create(ctx, ref, repo.ClassName, opts.Overwrite)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, svc)
		in.Service = svc.ClassName
	}

	req, err := g.request.Create(ctx, ref, columns, opts.Overwrite)
	if err != nil {
		return artifacts, err
	}
	artifacts = append(artifacts, req)
	in.Request = req.ClassName

	if opts.Type == model.TypeAPI {
		res, err := g.resource.Create(ctx, ref, columns, opts.Overwrite)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, res)
		in.Resource = res.ClassName
	}

	ctrl, err := g.controller.Create(ctx, ref, in, opts.Overwrite)
	if err != nil {
		return artifacts, err
	}
	artifacts = append(artifacts, ctrl)

	return artifacts, nil
}
