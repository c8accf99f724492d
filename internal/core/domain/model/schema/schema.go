// Package schema holds the declarative pieces a model type can expose:
// a Schema mapping field names to validators and a Defaults table, plus the
// two operations built on them, MergeDefaults and Validate.
package schema

import (
	"maps"
	"slices"
)

// UsageProp is the usage tag passed to every field validator.
const UsageProp = "prop"

// Values is the field set supplied to a create or update call.
type Values map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	maps.Copy(out, v)
	return out
}

// Keys returns the field names in lexical order.
func (v Values) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// Defaults maps a field name to the value used when a creation omits it.
type Defaults map[string]any

// Outcome is the result of a single field check: Ok or a Violation.
type Outcome struct {
	violation error
}

// Ok reports a passing check.
func Ok() Outcome {
	return Outcome{}
}

// Violation reports a failing check. A nil err is treated as Ok.
func Violation(err error) Outcome {
	return Outcome{violation: err}
}

// IsViolation reports whether the check failed.
func (o Outcome) IsViolation() bool {
	return o.violation != nil
}

// Err returns the violation, or nil for Ok.
func (o Outcome) Err() error {
	return o.violation
}

// Validator checks one field. It receives the whole value set so rules may
// look at sibling fields, the key under test, a label naming the model
// operation (for example "User.create") and a usage tag.
//
// Validators either return a Violation or, following the warning
// convention, emit their own diagnostic and return Ok.
type Validator interface {
	Validate(values Values, key, label, usage string) Outcome
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(values Values, key, label, usage string) Outcome

func (f ValidatorFunc) Validate(values Values, key, label, usage string) Outcome {
	return f(values, key, label, usage)
}

// Schema maps a field name to its validator.
type Schema map[string]Validator

// Keys returns the declared field names in lexical order.
func (s Schema) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Restrict returns the subset of s whose keys are present in values.
func (s Schema) Restrict(values Values) Schema {
	reduced := make(Schema, len(values))
	for key := range values {
		if validator, ok := s[key]; ok {
			reduced[key] = validator
		}
	}
	return reduced
}
