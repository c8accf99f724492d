package augment

import "strings"

// ProductionEnvironment is the environment name that turns validation off by default.
const ProductionEnvironment = "production"

// ResolveValidation decides whether validation is active. An explicit
// setting always wins; otherwise validation is on unless environment names
// production; with no environment signal at all it is on.
func ResolveValidation(explicit *bool, environment string) bool {
	if explicit != nil {
		return *explicit
	}
	if env := strings.TrimSpace(environment); env != "" {
		return !strings.EqualFold(env, ProductionEnvironment)
	}
	return true
}
