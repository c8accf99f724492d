package augment

import "schemamodel/internal/core/domain/model/schema"

const (
	optionValidate    = "validate"
	optionUseDefaults = "useDefaults"
)

// Options configures an Augmenter. Validate and UseDefaults are tri-state:
// nil means "not specified".
type Options struct {
	// Validate forces validation on or off. When nil the mode is derived
	// from Environment by ResolveValidation.
	Validate *bool

	// UseDefaults controls default merging on creation. Nil means true.
	UseDefaults *bool

	// Environment is the deployment environment name, e.g. "production".
	// Empty means no environment signal is available.
	Environment string

	// Policy decides whether a violation aborts the call. Nil aborts.
	Policy schema.Policy
}

// Bool returns a pointer to b, for filling Options literals.
func Bool(b bool) *bool {
	return &b
}

// ParseOptions reads the two recognized options from a loosely typed map,
// as found in declaration files. Unknown keys are ignored and so are values
// that are not booleans.
func ParseOptions(raw map[string]any) Options {
	var opts Options
	if v, ok := raw[optionValidate].(bool); ok {
		opts.Validate = Bool(v)
	}
	if v, ok := raw[optionUseDefaults].(bool); ok {
		opts.UseDefaults = Bool(v)
	}
	return opts
}
