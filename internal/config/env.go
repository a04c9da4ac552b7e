// Package config resolves credentials and overrides from the process
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// Env reads environment variables through viper. Keys are the exact variable
// names, e.g. COMMONROOM_API_TOKEN.
type Env struct {
	v *viper.Viper
}

// NewEnv creates a lookup bound to the current process environment.
func NewEnv() *Env {
	v := viper.New()
	v.AutomaticEnv()

	return &Env{v: v}
}

// Lookup returns the value of name and whether it is set and non-empty.
func (e *Env) Lookup(name string) (string, bool) {
	_ = e.v.BindEnv(name)

	value := strings.TrimSpace(e.v.GetString(name))

	return value, value != ""
}

// Require returns the value of name, or an error wrapping api.ErrMissingEnv
// naming the variable.
func (e *Env) Require(name string) (string, error) {
	value, ok := e.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", api.ErrMissingEnv, name)
	}

	return value, nil
}

// RequireAll resolves every name, reporting all missing variables at once.
func (e *Env) RequireAll(names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))

	var missing []string

	for _, name := range names {
		value, ok := e.Lookup(name)
		if !ok {
			missing = append(missing, name)

			continue
		}

		values[name] = value
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", api.ErrMissingEnv, strings.Join(missing, ", "))
	}

	return values, nil
}

// Optional returns the value of name or fallback when unset.
func (e *Env) Optional(name, fallback string) string {
	value, ok := e.Lookup(name)
	if !ok {
		return fallback
	}

	return value
}
