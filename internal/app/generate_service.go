package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/ctxutil"
	"github.com/example/autocrud/internal/errs"
	"github.com/example/autocrud/internal/logging"
	"github.com/example/autocrud/internal/ports/primary"
	"github.com/example/autocrud/internal/ports/secondary"
	"github.com/example/autocrud/internal/scaffold"
)

// GenerateServiceImpl implements the GenerateService interface.
type GenerateServiceImpl struct {
	models    model.Context
	discovery primary.DiscoveryService
	crud      *CRUDGenerator
	schema    secondary.SchemaInspector
	packages  secondary.PackageProbe
	prompter  secondary.Prompter
	log       *logging.Logger
}

var _ primary.GenerateService = (*GenerateServiceImpl)(nil)

// NewGenerateService creates a new GenerateService with injected dependencies.
func NewGenerateService(
	models model.Context,
	discovery primary.DiscoveryService,
	crud *CRUDGenerator,
	schema secondary.SchemaInspector,
	packages secondary.PackageProbe,
	prompter secondary.Prompter,
	log *logging.Logger,
) *GenerateServiceImpl {
	if log == nil {
		log = logging.Discard()
	}
	return &GenerateServiceImpl{
		models:    models,
		discovery: discovery,
		crud:      crud,
		schema:    schema,
		packages:  packages,
		prompter:  prompter,
		log:       log,
	}
}

// Generate validates the options, resolves the model set, checks the database
// and runs the CRUD chain once per model.
//
// Validation and database failures abort the run and are returned as errors.
// An empty model set returns the result collected so far together with an
// ErrModelNotFound error. Everything else is recorded per model.
func (s *GenerateServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResult, error) {
	if req.Type == "" {
		req.Type = model.TypeAPI
	}

	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	result := &primary.GenerateResult{RunID: ctxutil.RunIDFromContext(ctx)}
	if req.Curl {
		result.Warnings = append(result.Warnings, "CURL export is not handled by autocrud; run your API exporter after generation")
	}
	if req.Postman {
		result.Warnings = append(result.Warnings, "Postman export is not handled by autocrud; run your API exporter after generation")
	}

	names, err := s.resolveModels(ctx, req.Models, result)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return result, errs.Wrap(errs.ErrModelNotFound, nil, "no valid models found")
	}

	if !req.SkipValidation {
		if err := s.schema.Ping(ctx); err != nil {
			return nil, errs.Wrap(errs.ErrDatabase, err, "database connection failed")
		}
	}

	opts := CRUDOptions{
		Type:       req.Type,
		Pattern:    req.Pattern,
		Repository: req.Repository,
		Overwrite:  req.Overwrite,
	}
	for _, name := range names {
		outcome := s.generateModel(ctx, name, req, opts)
		result.Models = append(result.Models, outcome)
	}

	s.log.Info("generation finished",
		"generated", result.Count(primary.StatusGenerated),
		"skipped", result.Count(primary.StatusSkipped),
		"failed", result.Count(primary.StatusFailed),
	)
	return result, nil
}

func (s *GenerateServiceImpl) validate(ctx context.Context, req primary.GenerateRequest) error {
	hasSpatieData := false
	if req.Pattern == model.PatternSpatieData {
		ok, err := s.packages.HasPackage(ctx, model.SpatieDataPackage)
		if err != nil {
			return errs.Wrap(errs.ErrValidation, err, "failed to check for %s", model.SpatieDataPackage)
		}
		hasSpatieData = ok
	}

	guard := model.CanGenerate(model.OptionsContext{
		Type:          req.Type,
		Pattern:       req.Pattern,
		HasSpatieData: hasSpatieData,
	})
	if !guard.Allowed {
		return errs.Wrap(errs.ErrValidation, nil, "%s", guard.Reason)
	}
	return nil
}

// resolveModels locates each explicit model or falls back to interactive
// selection. Unknown and ambiguous models become warnings.
func (s *GenerateServiceImpl) resolveModels(ctx context.Context, requested []string, result *primary.GenerateResult) ([]string, error) {
	if len(requested) == 0 {
		selected, err := s.discovery.SelectModels(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to select models: %w", err)
		}
		return selected, nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, name := range requested {
		if name == "" {
			continue
		}

		matches, err := s.discovery.Locate(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up model %s: %w", name, err)
		}

		var warning error
		switch {
		case len(matches) == 0:
			warning = errs.Wrap(errs.ErrModelNotFound, nil, "model %q not found in %s", name, s.models.ModelsPath)
		case len(matches) > 1:
			warning = errs.Wrap(errs.ErrModelNotFound, nil, "model %q is ambiguous (%s); use the full path", name, strings.Join(matches, ", "))
		case seen[matches[0]]:
			continue
		}
		if warning != nil {
			result.Warnings = append(result.Warnings, warning.Error())
			s.log.Warn("model skipped", "model", name, "error", warning)
			continue
		}

		seen[matches[0]] = true
		names = append(names, matches[0])
	}
	return names, nil
}

func (s *GenerateServiceImpl) generateModel(ctx context.Context, name string, req primary.GenerateRequest, opts CRUDOptions) *primary.ModelOutcome {
	ref := model.Resolve(name)
	outcome := &primary.ModelOutcome{Model: ref.String()}
	log := s.log.With("model", outcome.Model)

	fail := func(err error) *primary.ModelOutcome {
		outcome.Status = primary.StatusFailed
		outcome.Reason = err.Error()
		log.Error("model failed", "error", err)
		return outcome
	}

	table, err := s.discovery.TableName(ctx, ref)
	if err != nil {
		return fail(err)
	}
	outcome.Table = table

	if !req.SkipValidation {
		exists, err := s.schema.HasTable(ctx, table)
		if err != nil {
			return fail(errs.Wrap(errs.ErrDatabase, err, "failed to check table %s", table))
		}

		if model.NeedsEmptySchemaConfirmation(model.EmptySchemaContext{
			TableExists:     exists,
			Force:           req.Force,
			NoConfirmations: req.NoConfirmations,
		}) {
			label := fmt.Sprintf("Table '%s' not found. Generate empty CRUD files?", table)
			proceed, err := s.prompter.Confirm(ctx, label, false)
			if err != nil {
				return fail(fmt.Errorf("confirmation failed: %w", err))
			}
			if !proceed {
				outcome.Status = primary.StatusSkipped
				outcome.Reason = fmt.Sprintf("table %s not found", table)
				log.Info("model skipped", "reason", outcome.Reason)
				return outcome
			}
		}
	}

	columns, err := s.schema.Columns(ctx, table)
	if err != nil {
		// Generation continues with empty rules and fields.
		log.Warn("could not read columns", "table", table, "error", err)
		columns = nil
	}

	artifacts, err := s.crud.Generate(ctx, ref, columns, opts)
	outcome.Artifacts = toArtifacts(artifacts)
	if err != nil {
		return fail(err)
	}

	outcome.Status = primary.StatusGenerated
	log.Debug("model generated", "artifacts", len(artifacts))
	return outcome
}

func toArtifacts(generated []*scaffold.GeneratedArtifact) []*primary.Artifact {
	artifacts := make([]*primary.Artifact, 0, len(generated))
	for _, a := range generated {
		artifacts = append(artifacts, &primary.Artifact{
			Kind:      a.Kind,
			Path:      a.Path,
			ClassName: a.ClassName,
			Written:   a.Written,
		})
	}
	return artifacts
}

