package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/errs"
	"github.com/example/autocrud/internal/ports/secondary"
	"github.com/example/autocrud/internal/scaffold"
	"github.com/example/autocrud/internal/templates"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockModelCatalog implements secondary.ModelCatalog for testing.
type mockModelCatalog struct {
	classes map[string]*secondary.ClassRecord
	extra   []string // Files that declare no class
	listErr error
	loads   int // LoadClasses calls
}

var _ secondary.ModelCatalog = (*mockModelCatalog)(nil)

func newMockModelCatalog() *mockModelCatalog {
	return &mockModelCatalog{classes: make(map[string]*secondary.ClassRecord)}
}

// addClass registers a class declared in the models tree file rel.
func (m *mockModelCatalog) addClass(rel, parent string, abstract bool, table string) *mockModelCatalog {
	fqcn := model.NewContext("", "").FullyQualified(model.Resolve(rel))
	m.classes[fqcn] = &secondary.ClassRecord{
		FQCN:     fqcn,
		Parent:   parent,
		Abstract: abstract,
		Table:    table,
		File:     rel,
	}
	return m
}

func (m *mockModelCatalog) ListFiles(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	files := append([]string(nil), m.extra...)
	for _, c := range m.classes {
		files = append(files, c.File)
	}
	sort.Strings(files)
	return files, nil
}

func (m *mockModelCatalog) LoadClasses(ctx context.Context) (map[string]*secondary.ClassRecord, error) {
	m.loads++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.classes, nil
}

// mockPrompter implements secondary.Prompter for testing.
type mockPrompter struct {
	confirm    bool
	confirmErr error
	selectFn   func(options []string) []string
	asked      []string
}

var _ secondary.Prompter = (*mockPrompter)(nil)

func (m *mockPrompter) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	m.asked = append(m.asked, label)
	if m.confirmErr != nil {
		return false, m.confirmErr
	}
	return m.confirm, nil
}

func (m *mockPrompter) MultiSelect(ctx context.Context, label string, options []string) ([]string, error) {
	m.asked = append(m.asked, label)
	if m.selectFn == nil {
		return options, nil
	}
	return m.selectFn(options), nil
}

// mockSchemaInspector implements secondary.SchemaInspector for testing.
type mockSchemaInspector struct {
	pingErr  error
	tables   map[string][]secondary.ColumnRecord
	pinged   bool
	hasTable []string
}

var _ secondary.SchemaInspector = (*mockSchemaInspector)(nil)

func newMockSchemaInspector() *mockSchemaInspector {
	return &mockSchemaInspector{tables: make(map[string][]secondary.ColumnRecord)}
}

func (m *mockSchemaInspector) Ping(ctx context.Context) error {
	m.pinged = true
	return m.pingErr
}

func (m *mockSchemaInspector) HasTable(ctx context.Context, table string) (bool, error) {
	m.hasTable = append(m.hasTable, table)
	_, ok := m.tables[table]
	return ok, nil
}

func (m *mockSchemaInspector) Columns(ctx context.Context, table string) ([]secondary.ColumnRecord, error) {
	return m.tables[table], nil
}

// mockPackageProbe implements secondary.PackageProbe for testing.
type mockPackageProbe struct {
	packages map[string]bool
}

var _ secondary.PackageProbe = (*mockPackageProbe)(nil)

func (m *mockPackageProbe) HasPackage(ctx context.Context, name string) (bool, error) {
	return m.packages[name], nil
}

// mockStubSource serves the embedded stubs unless a stub is listed in missing.
type mockStubSource struct {
	missing map[string]bool
}

var _ secondary.StubSource = (*mockStubSource)(nil)

func (m *mockStubSource) Load(ctx context.Context, name string) (string, error) {
	if m.missing[name] {
		return "", errs.Wrap(errs.ErrTemplateNotFound, nil, "stub %q", name)
	}
	content, err := templates.GetStub(name)
	if err != nil {
		return "", errs.Wrap(errs.ErrTemplateNotFound, err, "stub %q", name)
	}
	return content, nil
}

// mockArtifactWriter keeps written files in memory.
type mockArtifactWriter struct {
	files    map[string]string
	writeErr error
}

var _ secondary.ArtifactWriter = (*mockArtifactWriter)(nil)

func newMockArtifactWriter() *mockArtifactWriter {
	return &mockArtifactWriter{files: make(map[string]string)}
}

func (m *mockArtifactWriter) Exists(ctx context.Context, p string) (bool, error) {
	_, ok := m.files[p]
	return ok, nil
}

func (m *mockArtifactWriter) Write(ctx context.Context, p, content string) error {
	if m.writeErr != nil {
		return fmt.Errorf("disk full: %w", m.writeErr)
	}
	m.files[p] = content
	return nil
}

// newTestCRUDGenerator wires a chain over the default layout and in-memory adapters.
func newTestCRUDGenerator(stubs *mockStubSource, writer *mockArtifactWriter) *CRUDGenerator {
	gen := scaffold.NewGenerator(
		scaffold.DefaultLayout(),
		model.NewContext("", ""),
		stubs,
		writer,
	)
	return NewCRUDGenerator(gen)
}
