package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/errs"
)

const eloquentModel = `Illuminate\Database\Eloquent\Model`

func newTestDiscoveryService(catalog *mockModelCatalog, prompter *mockPrompter, extraBases ...string) *DiscoveryServiceImpl {
	if prompter == nil {
		prompter = &mockPrompter{}
	}
	return NewDiscoveryService(model.NewContext("", ""), catalog, prompter, extraBases...)
}

func TestDiscoveryService_Exists(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("User", eloquentModel, false, "").
		addClass("Blog/Post", eloquentModel, false, "")
	svc := newTestDiscoveryService(catalog, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		expected bool
	}{
		{"User", true},
		{"Post", true},
		{"Blog/Post", true},
		{"Shop/Post", false},
		{"Ghost", false},
		{"post", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Exists(ctx, tt.name)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("Exists(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestDiscoveryService_ExistsListError(t *testing.T) {
	catalog := newMockModelCatalog()
	catalog.listErr = errors.New("permission denied")

	_, err := newTestDiscoveryService(catalog, nil).Exists(context.Background(), "User")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDiscoveryService_ListAllModels(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("User", `Illuminate\Foundation\Auth\User`, false, "").
		addClass("Blog/Post", eloquentModel, false, "").
		addClass("BaseModel", eloquentModel, true, "").
		addClass("Invoice", `App\Models\BaseModel`, false, "").
		addClass("Tagging", `Illuminate\Database\Eloquent\Relations\Pivot`, false, "").
		addClass("Support/Money", "", false, "").
		addClass("Legacy/Order", `App\Support\LegacyModel`, false, "")
	catalog.extra = []string{"Concerns/HasSlug"}

	models, err := newTestDiscoveryService(catalog, nil).ListAllModels(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := []string{"Blog/Post", "Invoice", "Tagging", "User"}
	if !reflect.DeepEqual(models, expected) {
		t.Errorf("ListAllModels() = %v, want %v", models, expected)
	}
}

func TestDiscoveryService_ListAllModels_ConfiguredBase(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("Legacy/Order", `App\Support\LegacyModel`, false, "")

	models, err := newTestDiscoveryService(catalog, nil, `\App\Support\LegacyModel`).ListAllModels(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(models, []string{"Legacy/Order"}) {
		t.Errorf("ListAllModels() = %v, want [Legacy/Order]", models)
	}
}

func TestDiscoveryService_ListAllModels_InheritanceCycle(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("A", `App\Models\B`, false, "").
		addClass("B", `App\Models\A`, false, "")

	models, err := newTestDiscoveryService(catalog, nil).ListAllModels(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(models) != 0 {
		t.Errorf("expected no models, got %v", models)
	}
}

func TestDiscoveryService_SelectModels(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("User", eloquentModel, false, "").
		addClass("Blog/Post", eloquentModel, false, "")
	prompter := &mockPrompter{selectFn: func(options []string) []string {
		return options[:1]
	}}

	selected, err := newTestDiscoveryService(catalog, prompter).SelectModels(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(selected, []string{"Blog/Post"}) {
		t.Errorf("SelectModels() = %v, want [Blog/Post]", selected)
	}
	if len(prompter.asked) != 1 {
		t.Errorf("expected one prompt, got %d", len(prompter.asked))
	}
}

func TestDiscoveryService_SelectModels_NothingToSelect(t *testing.T) {
	prompter := &mockPrompter{}

	selected, err := newTestDiscoveryService(newMockModelCatalog(), prompter).SelectModels(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(selected) != 0 {
		t.Errorf("expected empty selection, got %v", selected)
	}
	if len(prompter.asked) != 0 {
		t.Error("expected no prompt when there are no models")
	}
}

func TestDiscoveryService_TableName(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("Blog/Post", eloquentModel, false, "").
		addClass("Person", eloquentModel, false, "").
		addClass("Legacy", eloquentModel, false, "tbl_legacy").
		addClass("BaseModel", eloquentModel, true, "").
		addClass("Money", "", false, "")
	svc := newTestDiscoveryService(catalog, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		model    string
		expected string
		wantErr  bool
	}{
		{name: "convention", model: "Blog/Post", expected: "posts"},
		{name: "irregular plural", model: "Person", expected: "people"},
		{name: "declared table wins", model: "Legacy", expected: "tbl_legacy"},
		{name: "abstract", model: "BaseModel", wantErr: true},
		{name: "not a model", model: "Money", wantErr: true},
		{name: "missing class", model: "Ghost", wantErr: true},
		{name: "wrong sub namespace", model: "Shop/Post", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := svc.TableName(ctx, model.Resolve(tt.model))
			if tt.wantErr {
				if !errors.Is(err, errs.ErrInvalidModel) {
					t.Fatalf("expected ErrInvalidModel, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if table != tt.expected {
				t.Errorf("TableName(%q) = %q, want %q", tt.model, table, tt.expected)
			}
		})
	}
}

func TestDiscoveryService_ClassesLoadedOnce(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("Post", eloquentModel, false, "").
		addClass("Comment", eloquentModel, false, "").
		addClass("Tag", eloquentModel, false, "")
	svc := newTestDiscoveryService(catalog, nil)
	ctx := context.Background()

	models, err := svc.ListAllModels(ctx)
	if err != nil {
		t.Fatalf("ListAllModels failed: %v", err)
	}
	for _, name := range models {
		if _, err := svc.TableName(ctx, model.Resolve(name)); err != nil {
			t.Fatalf("TableName(%q) failed: %v", name, err)
		}
	}

	if catalog.loads != 1 {
		t.Errorf("LoadClasses called %d times, want 1", catalog.loads)
	}
}

func TestDiscoveryService_FailedLoadIsRetried(t *testing.T) {
	catalog := newMockModelCatalog().addClass("Post", eloquentModel, false, "")
	catalog.listErr = errors.New("permission denied")
	svc := newTestDiscoveryService(catalog, nil)
	ctx := context.Background()

	if _, err := svc.TableName(ctx, model.Resolve("Post")); err == nil {
		t.Fatal("expected error, got nil")
	}

	catalog.listErr = nil
	table, err := svc.TableName(ctx, model.Resolve("Post"))
	if err != nil {
		t.Fatalf("expected no error after recovery, got %v", err)
	}
	if table != "posts" {
		t.Errorf("TableName = %q, want posts", table)
	}
}

func TestDiscoveryService_Locate(t *testing.T) {
	catalog := newMockModelCatalog().
		addClass("Blog/Post", eloquentModel, false, "").
		addClass("Shop/Post", eloquentModel, false, "").
		addClass("User", eloquentModel, false, "")
	svc := newTestDiscoveryService(catalog, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		expected []string
	}{
		{"User", []string{"User"}},
		{"Post", []string{"Blog/Post", "Shop/Post"}},
		{"Shop/Post", []string{"Shop/Post"}},
		{"/User", []string{"User"}},
		{"Ghost", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Locate(ctx, tt.name)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Locate(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
