package app

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/errs"
	"github.com/example/autocrud/internal/ports/primary"
	"github.com/example/autocrud/internal/ports/secondary"
	"github.com/example/autocrud/internal/scaffold"
)

// ModelBases are the framework classes every persistence model descends from.
var ModelBases = []string{
	`Illuminate\Database\Eloquent\Model`,
	`Illuminate\Foundation\Auth\User`,
	`Illuminate\Database\Eloquent\Relations\Pivot`,
	`Illuminate\Database\Eloquent\Relations\MorphPivot`,
}

// DiscoveryServiceImpl implements the DiscoveryService interface.
type DiscoveryServiceImpl struct {
	models   model.Context
	catalog  secondary.ModelCatalog
	prompter secondary.Prompter
	bases    map[string]bool

	mu      sync.Mutex
	classes map[string]*secondary.ClassRecord
}

var _ primary.DiscoveryService = (*DiscoveryServiceImpl)(nil)

// NewDiscoveryService creates a new DiscoveryService with injected dependencies.
// extraBases extends ModelBases with project-specific base classes.
func NewDiscoveryService(models model.Context, catalog secondary.ModelCatalog, prompter secondary.Prompter, extraBases ...string) *DiscoveryServiceImpl {
	bases := make(map[string]bool, len(ModelBases)+len(extraBases))
	for _, b := range ModelBases {
		bases[b] = true
	}
	for _, b := range extraBases {
		bases[strings.Trim(b, model.NamespaceSeparator)] = true
	}

	return &DiscoveryServiceImpl{
		models:   models,
		catalog:  catalog,
		prompter: prompter,
		bases:    bases,
	}
}

// Exists reports whether a file named after the model exists below the models path.
// A plain name matches the last segment of any file; a name with "/" must match
// the relative path exactly.
func (s *DiscoveryServiceImpl) Exists(ctx context.Context, name string) (bool, error) {
	matches, err := s.Locate(ctx, name)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// Locate returns the relative paths of the files matching name, using the
// same rules as Exists.
func (s *DiscoveryServiceImpl) Locate(ctx context.Context, name string) ([]string, error) {
	files, err := s.catalog.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.Trim(name, "/")
	qualified := strings.Contains(name, "/")

	var matches []string
	for _, f := range files {
		if f == name || (!qualified && path.Base(f) == name) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// ListAllModels returns every concrete persistence model below the models path,
// as relative identifiers ("Blog/Post"), in file order.
func (s *DiscoveryServiceImpl) ListAllModels(ctx context.Context) ([]string, error) {
	classes, err := s.loadClasses(ctx)
	if err != nil {
		return nil, err
	}
	files, err := s.catalog.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	var models []string
	for _, f := range files {
		cls, ok := classes[s.models.FullyQualified(model.Resolve(f))]
		if !ok || cls.File != f {
			continue
		}
		if cls.Abstract || !s.isPersistenceModel(cls, classes) {
			continue
		}
		models = append(models, f)
	}
	return models, nil
}

// SelectModels presents the discovered models for interactive selection.
func (s *DiscoveryServiceImpl) SelectModels(ctx context.Context) ([]string, error) {
	models, err := s.ListAllModels(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}

	selected, err := s.prompter.MultiSelect(ctx, "Select the models to generate CRUD for", models)
	if err != nil {
		return nil, fmt.Errorf("model selection failed: %w", err)
	}
	return selected, nil
}

// TableName returns the declared $table of a model, or the plural snake_case
// of its class name when none is declared.
func (s *DiscoveryServiceImpl) TableName(ctx context.Context, ref model.Reference) (string, error) {
	classes, err := s.loadClasses(ctx)
	if err != nil {
		return "", err
	}

	fqcn := s.models.FullyQualified(ref)
	cls, ok := classes[fqcn]
	if !ok {
		return "", errs.Wrap(errs.ErrInvalidModel, nil, "class %s not found", fqcn)
	}
	if cls.Abstract {
		return "", errs.Wrap(errs.ErrInvalidModel, nil, "%s is abstract", fqcn)
	}
	if !s.isPersistenceModel(cls, classes) {
		return "", errs.Wrap(errs.ErrInvalidModel, nil, "%s is not an Eloquent model", fqcn)
	}

	if cls.Table != "" {
		return cls.Table, nil
	}
	return scaffold.TableName(ref.ShortName), nil
}

// loadClasses parses the models tree on first use and keeps the result for
// the lifetime of the service. Failed loads are not cached.
func (s *DiscoveryServiceImpl) loadClasses(ctx context.Context) (map[string]*secondary.ClassRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.classes != nil {
		return s.classes, nil
	}
	classes, err := s.catalog.LoadClasses(ctx)
	if err != nil {
		return nil, err
	}
	if classes == nil {
		classes = make(map[string]*secondary.ClassRecord)
	}
	s.classes = classes
	return classes, nil
}

// isPersistenceModel follows the parent chain through the parsed classes until
// it reaches a registered base. Cycles and unknown parents end the walk.
func (s *DiscoveryServiceImpl) isPersistenceModel(cls *secondary.ClassRecord, classes map[string]*secondary.ClassRecord) bool {
	seen := make(map[string]bool)
	for parent := cls.Parent; parent != ""; {
		if s.bases[parent] {
			return true
		}
		if seen[parent] {
			return false
		}
		seen[parent] = true

		next, ok := classes[parent]
		if !ok {
			return false
		}
		parent = next.Parent
	}
	return false
}
