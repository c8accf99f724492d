// Package augment wraps model types with schema validation and default
// values. An Augmenter is built once from Options; Augment then wraps any
// number of model types with that fixed configuration.
//
//	aug := augment.New(augment.Options{Environment: cfg.AppEnv})
//	users := aug.Augment(userType)
//
//	inst, err := users.Create(ctx, schema.Values{"name": "Tommi", "age": 25})
//	if err != nil {
//	    return err // *errs.ValidationError under the abort policy
//	}
//	err = inst.Update(ctx, schema.Values{"age": 26})
//
// Create merges the declared defaults and validates the full schema.
// Update validates only the declared fields present in the patch and
// forwards the patch untouched. Schema and defaults are read from the model
// type on every call.
package augment

import (
	"context"

	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/core/ports"
)

// Augmenter holds a resolved augmentation configuration. It is immutable
// and safe for concurrent use.
type Augmenter struct {
	validate    bool
	useDefaults bool
	policy      schema.Policy
}

// New resolves opts once. The result does not change for the lifetime of
// the Augmenter.
func New(opts Options) *Augmenter {
	useDefaults := true
	if opts.UseDefaults != nil {
		useDefaults = *opts.UseDefaults
	}

	policy := opts.Policy
	if policy == nil {
		policy = schema.AbortPolicy{}
	}

	return &Augmenter{
		validate:    ResolveValidation(opts.Validate, opts.Environment),
		useDefaults: useDefaults,
		policy:      policy,
	}
}

// Validates reports whether validation is active.
func (a *Augmenter) Validates() bool {
	return a.validate
}

// UsesDefaults reports whether creation merges declared defaults.
func (a *Augmenter) UsesDefaults() bool {
	return a.useDefaults
}

// Derive returns an Augmenter whose explicitly set options in raw override
// this one's. Anything raw leaves unset keeps the receiver's resolved value.
func (a *Augmenter) Derive(raw map[string]any) *Augmenter {
	override := ParseOptions(raw)
	if override.Validate == nil && override.UseDefaults == nil {
		return a
	}

	derived := *a
	if override.Validate != nil {
		derived.validate = *override.Validate
	}
	if override.UseDefaults != nil {
		derived.useDefaults = *override.UseDefaults
	}
	return &derived
}

// Augment wraps base. Nothing is read from base until a call is made.
func (a *Augmenter) Augment(base ports.ModelType) *Type {
	return &Type{base: base, aug: a}
}

// Type is an augmented model type.
type Type struct {
	base ports.ModelType
	aug  *Augmenter
}

var (
	_ ports.ModelType        = (*Type)(nil)
	_ ports.SchemaDeclarer   = (*Type)(nil)
	_ ports.DefaultsDeclarer = (*Type)(nil)
)

// ModelName returns the base type's name.
func (t *Type) ModelName() string {
	return t.base.ModelName()
}

// Base returns the wrapped model type.
func (t *Type) Base() ports.ModelType {
	return t.base
}

// PropTypes passes the base type's current schema through.
func (t *Type) PropTypes() schema.Schema {
	s, _ := propTypes(t.base)
	return s
}

// DefaultProps passes the base type's current defaults through.
func (t *Type) DefaultProps() schema.Defaults {
	return defaultProps(t.base)
}

// Create merges defaults into values, validates the merged set against the
// whole schema and forwards it with extra to the base type. The base
// result is wrapped so later updates are validated too; its error is
// returned unchanged.
func (t *Type) Create(ctx context.Context, values schema.Values, extra ...any) (ports.Instance, error) {
	var defaults schema.Defaults
	if t.aug.useDefaults {
		defaults = defaultProps(t.base)
	}
	merged := schema.MergeDefaults(defaults, values, t.aug.useDefaults)

	if t.aug.validate {
		if s, ok := propTypes(t.base); ok {
			label := t.base.ModelName() + ".create"
			if err := schema.Validate(ctx, s, merged, label, t.aug.policy); err != nil {
				return nil, err
			}
		}
	}

	inst, err := t.base.Create(ctx, merged, extra...)
	if inst == nil {
		return nil, err
	}
	return t.Wrap(inst), err
}

// Wrap augments an instance obtained outside Create, such as one loaded
// from storage.
func (t *Type) Wrap(inst ports.Instance) *Instance {
	if wrapped, ok := inst.(*Instance); ok && wrapped.aug == t.aug {
		return wrapped
	}
	return &Instance{base: inst, aug: t.aug}
}

// Instance is an augmented model instance.
type Instance struct {
	base ports.Instance
	aug  *Augmenter
}

var _ ports.Instance = (*Instance)(nil)

// ModelType returns the instance's declared type, augmented with the same
// configuration.
func (i *Instance) ModelType() ports.ModelType {
	return i.aug.Augment(i.base.ModelType())
}

// Unwrap returns the base instance.
func (i *Instance) Unwrap() ports.Instance {
	return i.base
}

// Update validates the declared fields present in values and forwards
// the original values with extra to the base instance. Declared fields
// missing from values are neither checked nor added.
func (i *Instance) Update(ctx context.Context, values schema.Values, extra ...any) error {
	if i.aug.validate {
		declared := i.base.ModelType()
		if s, ok := propTypes(declared); ok {
			label := declared.ModelName() + ".update"
			if err := schema.Validate(ctx, s.Restrict(values), values, label, i.aug.policy); err != nil {
				return err
			}
		}
	}

	return i.base.Update(ctx, values, extra...)
}

func propTypes(t ports.ModelType) (schema.Schema, bool) {
	declarer, ok := t.(ports.SchemaDeclarer)
	if !ok {
		return nil, false
	}
	s := declarer.PropTypes()
	return s, s != nil
}

func defaultProps(t ports.ModelType) schema.Defaults {
	declarer, ok := t.(ports.DefaultsDeclarer)
	if !ok {
		return nil
	}
	return declarer.DefaultProps()
}
