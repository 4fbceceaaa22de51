package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration overrides from environment variables.
// SHEETVIEW_VIEWPORT_WIDTH=800 becomes viewport.width = 800: the first word
// after the prefix names the table and the rest, joined with underscores,
// names the key.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix, which
// should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderWithEnviron creates a loader reading from environ instead of
// the process environment.
func NewEnvLoaderWithEnviron(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: func() []string { return environ }}
}

// Load returns the overrides as nested tables, or nil when there are none.
func (l *EnvLoader) Load() (map[string]any, error) {
	var config map[string]any
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, l.prefix)), "_")
		if !ok || section == "" || key == "" {
			continue
		}
		if config == nil {
			config = make(map[string]any)
		}
		table, _ := config[section].(map[string]any)
		if table == nil {
			table = make(map[string]any)
			config[section] = table
		}
		table[key] = parseValue(value)
	}
	return config, nil
}

// parseValue types an environment value the way TOML would: integers,
// then booleans, then strings.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
