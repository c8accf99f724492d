package proptypes

import (
	"log/slog"

	"schemamodel/internal/core/domain/model/schema"
)

// Warn wraps v so violations are logged and reported as Ok. The augmented
// call then proceeds to the underlying model.
func Warn(logger *slog.Logger, v schema.Validator) schema.Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return schema.ValidatorFunc(func(values schema.Values, key, label, usage string) schema.Outcome {
		outcome := v.Validate(values, key, label, usage)
		if outcome.IsViolation() {
			logger.Warn("Failed prop type", "label", label, "field", key, "usage", usage, "error", outcome.Err())
		}
		return schema.Ok()
	})
}

// WarnAll applies Warn to every validator of s.
func WarnAll(logger *slog.Logger, s schema.Schema) schema.Schema {
	out := make(schema.Schema, len(s))
	for key, v := range s {
		out[key] = Warn(logger, v)
	}
	return out
}
