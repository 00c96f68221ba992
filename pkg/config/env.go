package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Every variable read by ParseEnv starts with this prefix, struct tags leave it out
const EnvPrefix = "HYPERCUBE_"

// ParseEnv fills target from HYPERCUBE_* environment variables, falling back
// to the envDefault tags.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
