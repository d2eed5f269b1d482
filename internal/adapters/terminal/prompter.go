// Package terminal contains the interactive prompter used for model
// selection and confirmations.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/example/autocrud/internal/ports/secondary"
)

// Prompter implements secondary.Prompter over a line-oriented reader and writer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ secondary.Prompter = (*Prompter)(nil)

// NewPrompter creates a prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question. Empty input returns def.
func (p *Prompter) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", color.New(color.FgYellow).Sprint(label), hint)

	response, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(response) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// MultiSelect lists the options numbered from 1 and reads a comma or space
// separated list of numbers, or "all". Empty input selects nothing.
func (p *Prompter) MultiSelect(ctx context.Context, label string, options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}

	fmt.Fprintln(p.out, color.New(color.Bold).Sprint(label))
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %s %s\n", color.New(color.FgCyan).Sprintf("[%d]", i+1), opt)
	}

	for {
		fmt.Fprint(p.out, "Select (e.g. 1,3 or all): ")
		response, err := p.readLine(ctx)
		if err != nil {
			return nil, err
		}

		selected, err := parseSelection(response, options)
		if err == nil {
			return selected, nil
		}
		fmt.Fprintln(p.out, color.New(color.FgRed).Sprint(err.Error()))
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseSelection(response string, options []string) ([]string, error) {
	if response == "" {
		return nil, nil
	}
	if strings.EqualFold(response, "all") || response == "*" {
		return append([]string(nil), options...), nil
	}

	fields := strings.FieldsFunc(response, func(r rune) bool {
		return r == ',' || r == ' '
	})

	seen := make(map[int]bool)
	var selected []string
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(options) {
			return nil, fmt.Errorf("invalid choice %q: pick numbers between 1 and %d", f, len(options))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, options[n-1])
	}
	return selected, nil
}
