package secondary

import "context"

// StubSource defines the secondary port for loading stub templates.
type StubSource interface {
	// Load returns the stub content for a stub name such as "repository" or "api.controller".
	// Returns an error matching errs.ErrTemplateNotFound when no stub exists.
	Load(ctx context.Context, name string) (string, error)
}

// ArtifactWriter defines the secondary port for writing generated files.
type ArtifactWriter interface {
	// Exists reports whether a file already exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Write creates parent directories as needed and writes content to path,
	// replacing any prior content.
	Write(ctx context.Context, path, content string) error
}

// Prompter defines the secondary port for interactive operator input.
type Prompter interface {
	// Confirm asks a yes/no question. def is returned on empty input.
	Confirm(ctx context.Context, label string, def bool) (bool, error)

	// MultiSelect lets the operator pick any subset of options.
	MultiSelect(ctx context.Context, label string, options []string) ([]string, error)
}
