package schema

import (
	"context"
	"log/slog"
)

// Policy decides what a violation does to the surrounding call.
// Returning an error aborts it; returning nil lets validation continue.
type Policy interface {
	Report(ctx context.Context, label, key string, violation error) error
}

// AbortPolicy fails the call on the first violation.
type AbortPolicy struct{}

func (AbortPolicy) Report(_ context.Context, _, _ string, violation error) error {
	return violation
}

// WarnPolicy logs every violation and never aborts.
type WarnPolicy struct {
	Logger *slog.Logger
}

// NewWarnPolicy returns a WarnPolicy logging through logger (slog.Default when nil).
func NewWarnPolicy(logger *slog.Logger) WarnPolicy {
	if logger == nil {
		logger = slog.Default()
	}
	return WarnPolicy{Logger: logger.With("component", "schema_validator")}
}

func (p WarnPolicy) Report(ctx context.Context, label, key string, violation error) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(ctx, "Schema violation", "label", label, "field", key, "error", violation)
	return nil
}
