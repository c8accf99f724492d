// Package proptypes is the built-in validator library for model schemas.
//
// Checkers follow the return convention: a mismatch comes back as a
// schema.Violation wrapping *errs.ValidationError. Warn turns any validator
// into one that follows the warning convention instead.
//
//	userSchema := schema.Schema{
//	    "name":       proptypes.String.IsRequired(),
//	    "age":        proptypes.Number.IsRequired(),
//	    "isFetching": proptypes.Bool.IsRequired(),
//	    "role":       proptypes.OneOf("admin", "member"),
//	}
package proptypes

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/pkg/errs"
)

// Checker validates the type of a single field. Absent and nil values pass
// unless the checker is marked required.
type Checker struct {
	name     string
	check    func(v any) bool
	allowed  []any
	required bool
}

var (
	Any    = Checker{name: "any", check: func(any) bool { return true }}
	String = Checker{name: "string", check: isKind(reflect.String)}
	Bool   = Checker{name: "bool", check: isKind(reflect.Bool)}
	Number = Checker{name: "number", check: isKind(
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
	)}
	Array  = Checker{name: "array", check: isKind(reflect.Slice, reflect.Array)}
	Object = Checker{name: "object", check: isKind(reflect.Map, reflect.Struct)}
)

// OneOf accepts only the listed values. Numbers match by value whatever
// their Go type, so a declared 1 accepts the float64 1 decoded from JSON.
func OneOf(allowed ...any) Checker {
	names := make([]string, 0, len(allowed))
	normalized := make([]any, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, fmt.Sprintf("%v", a))
		normalized = append(normalized, normalizeNumber(a))
	}
	return Checker{
		name: "one of [" + strings.Join(names, ", ") + "]",
		check: func(v any) bool {
			v = normalizeNumber(v)
			return slices.ContainsFunc(normalized, func(a any) bool { return reflect.DeepEqual(a, v) })
		},
		allowed: slices.Clone(allowed),
	}
}

// Named builds a checker from an arbitrary predicate.
func Named(name string, check func(v any) bool) Checker {
	return Checker{name: name, check: check}
}

// ByName resolves the checker for a declared type name, as used by
// declaration files. Unknown names report false.
func ByName(name string) (Checker, bool) {
	switch strings.ToLower(name) {
	case "", "any":
		return Any, true
	case "string":
		return String, true
	case "bool", "boolean":
		return Bool, true
	case "number", "int", "integer", "float":
		return Number, true
	case "array", "list":
		return Array, true
	case "object", "map":
		return Object, true
	}
	return Checker{}, false
}

// TypeName returns the name used in violation messages, e.g. "string".
func (c Checker) TypeName() string {
	return c.name
}

// Allowed returns the values accepted by a OneOf checker, nil otherwise.
func (c Checker) Allowed() []any {
	return slices.Clone(c.allowed)
}

// Required reports whether absent and nil values are rejected.
func (c Checker) Required() bool {
	return c.required
}

// IsRequired returns a copy that also rejects absent and nil values.
func (c Checker) IsRequired() Checker {
	c.required = true
	return c
}

// Validate implements schema.Validator.
func (c Checker) Validate(values schema.Values, key, label, _ string) schema.Outcome {
	v, ok := values[key]
	if !ok || v == nil {
		if c.required {
			return schema.Violation(errs.NewValidationErrorWithCause(label, key, errs.NewValueIsRequiredError(key)))
		}
		return schema.Ok()
	}

	if c.check != nil && !c.check(v) {
		return schema.Violation(errs.NewValidationError(label, key,
			fmt.Sprintf("expected %s, got %s", c.name, kindOf(v))))
	}
	return schema.Ok()
}

func isKind(kinds ...reflect.Kind) func(v any) bool {
	return func(v any) bool {
		return slices.Contains(kinds, reflect.TypeOf(v).Kind())
	}
}

// normalizeNumber widens every integer and float kind to float64.
// Other values are returned unchanged.
func normalizeNumber(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

func kindOf(v any) string {
	return reflect.TypeOf(v).String()
}
