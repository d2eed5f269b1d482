// Package cli contains the adapters that translate CLI commands into service
// calls and render their results for the operator.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/autocrud/internal/ctxutil"
	"github.com/example/autocrud/internal/errs"
	"github.com/example/autocrud/internal/ports/primary"
)

// GenerateAdapter is a thin adapter that translates the generate command to GenerateService calls.
type GenerateAdapter struct {
	service primary.GenerateService
	out     io.Writer
	verbose bool
}

// NewGenerateAdapter creates a new GenerateAdapter with the given service.
func NewGenerateAdapter(service primary.GenerateService, out io.Writer, verbose bool) *GenerateAdapter {
	return &GenerateAdapter{
		service: service,
		out:     out,
		verbose: verbose,
	}
}

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

// Generate runs a generate request and reports the outcome of every model.
// An empty model set is reported as an alert, not returned as an error.
func (a *GenerateAdapter) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResult, error) {
	result, err := a.service.Generate(ctx, req)
	if result != nil {
		a.printWarnings(result.Warnings)
	}
	if errors.Is(err, errs.ErrModelNotFound) {
		fmt.Fprintln(a.out, failColor.Sprint("No valid models found. Nothing to generate."))
		return result, nil
	}
	if err != nil {
		if errs.IsBatchFatal(err) {
			fmt.Fprintln(a.out, failColor.Sprint("Generation aborted. No files were written."+runSuffix(ctxutil.RunIDFromContext(ctx))))
		}
		return nil, err
	}

	for _, m := range result.Models {
		a.printModel(m)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s generated, %s skipped, %s failed%s\n",
		successColor.Sprint(result.Count(primary.StatusGenerated)),
		warnColor.Sprint(result.Count(primary.StatusSkipped)),
		failColor.Sprint(result.Count(primary.StatusFailed)),
		dimColor.Sprint(runSuffix(result.RunID)),
	)
	return result, nil
}

// runSuffix formats the run ID for the end of a status line.
func runSuffix(runID string) string {
	if runID == "" {
		return ""
	}
	return fmt.Sprintf(" (run %s)", runID)
}

func (a *GenerateAdapter) printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(a.out, "%s %s\n", warnColor.Sprint("⚠"), w)
	}
}

func (a *GenerateAdapter) printModel(m *primary.ModelOutcome) {
	switch m.Status {
	case primary.StatusGenerated:
		fmt.Fprintf(a.out, "%s CRUD for %s generated successfully\n", successColor.Sprint("✓"), m.Model)
	case primary.StatusSkipped:
		fmt.Fprintf(a.out, "%s %s skipped: %s\n", warnColor.Sprint("-"), m.Model, m.Reason)
	default:
		fmt.Fprintf(a.out, "%s %s failed: %s\n", failColor.Sprint("✗"), m.Model, m.Reason)
	}

	if !a.verbose && m.Status != primary.StatusFailed {
		return
	}
	for _, art := range m.Artifacts {
		state := "created"
		if !art.Written {
			state = "kept"
		}
		fmt.Fprintf(a.out, "    %-10s %s %s\n", art.Kind, art.Path, dimColor.Sprintf("(%s)", state))
	}
}
