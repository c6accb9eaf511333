// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig]. Surrounding whitespace is trimmed
// from every value before parsing.
func parseEnv(cfg any) error {
	opts := env.Options{Environment: trimmedEnviron()}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w: %w", ErrInvalidEnv, err)
	}

	return nil
}

func trimmedEnviron() map[string]string {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		environ[name] = strings.TrimSpace(value)
	}
	return environ
}
