package model

import "fmt"

// Supported artifact types.
const (
	TypeAPI = "api"
	TypeWeb = "web"
)

// PatternSpatieData selects spatie/laravel-data objects for request payloads.
const PatternSpatieData = "spatie-data"

// SpatieDataPackage is the composer package the spatie-data pattern depends on.
const SpatieDataPackage = "spatie/laravel-data"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// OptionsContext provides the invocation options the generate guards look at.
// Populated by the caller; HasSpatieData is probed from the project beforehand.
type OptionsContext struct {
	Type          string
	Pattern       string
	HasSpatieData bool
}

// CanGenerate evaluates whether an option combination is acceptable.
// Rules: type must be api or web; the only pattern is spatie-data and it
// requires spatie/laravel-data to be installed.
func CanGenerate(ctx OptionsContext) GuardResult {
	if ctx.Type != TypeAPI && ctx.Type != TypeWeb {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Type must be either %q or %q (got %q).", TypeAPI, TypeWeb, ctx.Type),
		}
	}

	switch ctx.Pattern {
	case "":
	case PatternSpatieData:
		if !ctx.HasSpatieData {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("Spatie Data package is required but not installed. Run: composer require %s", SpatieDataPackage),
			}
		}
	default:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Unsupported pattern %q. Supported: %s", ctx.Pattern, PatternSpatieData),
		}
	}

	return GuardResult{Allowed: true}
}

// EmptySchemaContext provides context for deciding whether a model with a
// missing table may be generated without asking.
type EmptySchemaContext struct {
	TableExists     bool
	Force           bool
	NoConfirmations bool
}

// NeedsEmptySchemaConfirmation reports whether the operator must be asked
// before generating files for a model whose table does not exist.
func NeedsEmptySchemaConfirmation(ctx EmptySchemaContext) bool {
	return !ctx.TableExists && !ctx.Force && !ctx.NoConfirmations
}
