package schema

import "maps"

// MergeDefaults builds the effective creation input: every default first,
// then every caller value on top, so the caller wins on collisions.
// With useDefaults off, or no defaults declared, it returns a copy of values.
// Neither argument is modified.
func MergeDefaults(defaults Defaults, values Values, useDefaults bool) Values {
	if !useDefaults || defaults == nil {
		return values.Clone()
	}

	merged := make(Values, len(defaults)+len(values))
	maps.Copy(merged, defaults)
	maps.Copy(merged, values)
	return merged
}
