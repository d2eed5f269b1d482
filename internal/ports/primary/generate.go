// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/autocrud/internal/core/model"
)

// GenerateService defines the primary port for CRUD generation.
type GenerateService interface {
	// Generate validates the options, resolves the model set and runs the
	// builder chain once per model. Only batch-fatal failures are returned as
	// errors; per-model failures are reported in the result.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// DiscoveryService defines the primary port for finding models in the project.
type DiscoveryService interface {
	// Exists reports whether a model file with the given name exists below the models path.
	Exists(ctx context.Context, name string) (bool, error)

	// Locate returns the relative paths of the model files matching name
	// ("Post" -> ["Blog/Post"]), in file order.
	Locate(ctx context.Context, name string) ([]string, error)

	// ListAllModels returns every persistence model below the models path ("Blog/Post").
	ListAllModels(ctx context.Context) ([]string, error)

	// SelectModels lets the operator choose among ListAllModels.
	SelectModels(ctx context.Context) ([]string, error)

	// TableName returns the storage table of a persistence model.
	TableName(ctx context.Context, ref model.Reference) (string, error)
}

// GenerateRequest contains the invocation options of a generate run.
type GenerateRequest struct {
	Models          []string // Explicit model identifiers; empty means interactive selection
	Type            string   // "api" or "web"
	Repository      bool     // Generate repository and service layers
	Overwrite       bool
	Pattern         string // "" or "spatie-data"
	Force           bool
	SkipValidation  bool // Skip database connectivity and table checks
	NoConfirmations bool
	Curl            bool // Export CURL commands (external tool)
	Postman         bool // Export a Postman collection (external tool)
}

// Model outcome statuses.
const (
	StatusGenerated = "generated"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// GenerateResult contains the outcome of a generate run.
type GenerateResult struct {
	RunID    string   // Run ID of the invocation, matching the run_id log attribute
	Warnings []string // Non-fatal notices, e.g. models that were not found
	Models   []*ModelOutcome
}

// Count returns the number of model outcomes with the given status.
func (r *GenerateResult) Count(status string) int {
	n := 0
	for _, m := range r.Models {
		if m.Status == status {
			n++
		}
	}
	return n
}

// ModelOutcome is the result of generating one model.
type ModelOutcome struct {
	Model     string
	Table     string
	Status    string
	Reason    string // Why the model was skipped or failed
	Artifacts []*Artifact
}

// Artifact is a single generated (or preserved) file.
type Artifact struct {
	Kind      string // "repository", "service", "request", ...
	Path      string
	ClassName string // Fully-qualified class name
	Written   bool   // False when an existing file was preserved
}
