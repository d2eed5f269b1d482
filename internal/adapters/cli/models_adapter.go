package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/autocrud/internal/core/model"
	"github.com/example/autocrud/internal/ports/primary"
)

// ModelsAdapter translates the models command to DiscoveryService calls.
type ModelsAdapter struct {
	service primary.DiscoveryService
	out     io.Writer
}

// NewModelsAdapter creates a new ModelsAdapter with the given service.
func NewModelsAdapter(service primary.DiscoveryService, out io.Writer) *ModelsAdapter {
	return &ModelsAdapter{
		service: service,
		out:     out,
	}
}

// List prints every discovered model with its table.
func (a *ModelsAdapter) List(ctx context.Context) ([]string, error) {
	models, err := a.service.ListAllModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	if len(models) == 0 {
		fmt.Fprintln(a.out, "No models found.")
		return models, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MODEL\tTABLE")
	fmt.Fprintln(w, "-----\t-----")

	for _, name := range models {
		table, err := a.service.TableName(ctx, model.Resolve(name))
		if err != nil {
			table = "?"
		}
		fmt.Fprintf(w, "%s\t%s\n", name, table)
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write model list: %w", err)
	}
	return models, nil
}
