package settings

import (
	"os"
	"strings"
)

// Env is a source of environment variables.
type Env interface {
	LookupEnv(key string) (string, bool)
	Environ() []string
}

// OSEnv reads the process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (OSEnv) Environ() []string { return os.Environ() }

// MapEnv is an in-memory environment.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

// prefixed collects every non-empty variable starting with prefix followed by an
// underscore. The prefix is matched case-insensitively, and keys are the
// remainder of the name, lower-cased.
func prefixed(env Env, prefix string) map[string]string {
	want := strings.ToLower(prefix) + "_"
	out := make(map[string]string)

	for _, kv := range env.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, want) || len(lower) == len(want) {
			continue
		}
		out[lower[len(want):]] = value
	}

	return out
}
