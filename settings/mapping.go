package settings

import (
	"fmt"

	"github.com/sagarc03/website"
)

// EnvMapping maps settings keys to environment variable names.
type EnvMapping map[string]string

// Lookup returns the settings for every mapped variable that is set to a
// non-empty value. Unset variables are skipped.
func (m EnvMapping) Lookup(env Env) map[string]any {
	out := make(map[string]any, len(m))
	for key, name := range m {
		if value, ok := env.LookupEnv(name); ok && value != "" {
			out[key] = value
		}
	}
	return out
}

// LookupStrict is like Lookup but fails with website.ErrMissingEnv when a
// mapped variable is unset or empty.
func (m EnvMapping) LookupStrict(env Env) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for key, name := range m {
		value, ok := env.LookupEnv(name)
		if !ok || value == "" {
			return nil, fmt.Errorf("%w: %s (for %s)", website.ErrMissingEnv, name, key)
		}
		out[key] = value
	}
	return out, nil
}
