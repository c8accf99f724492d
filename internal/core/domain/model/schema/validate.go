package schema

import "context"

// Validate runs every validator of s against values, in lexical key order,
// labelling each call with label. Each violation is handed to policy; the
// first non-nil error it returns stops the run and is returned unchanged.
// A nil policy aborts on the first violation.
func Validate(ctx context.Context, s Schema, values Values, label string, policy Policy) error {
	if policy == nil {
		policy = AbortPolicy{}
	}

	for _, key := range s.Keys() {
		validator := s[key]
		if validator == nil {
			continue
		}

		outcome := validator.Validate(values, key, label, UsageProp)
		if !outcome.IsViolation() {
			continue
		}

		if err := policy.Report(ctx, label, key, outcome.Err()); err != nil {
			return err
		}
	}

	return nil
}
