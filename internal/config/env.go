// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(map[string][]string{}): parseColumnAliases,
		},
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseColumnAliases reads header aliases written as
//
//	collaborator=RESPONSAVEL|RESP;task=TAREFA
//
// Entries are separated by ";" and spellings of one column by "|".
func parseColumnAliases(value string) (any, error) {
	aliases := make(map[string][]string)
	for _, entry := range strings.Split(value, ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		column, spellings, ok := strings.Cut(entry, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" {
			return nil, fmt.Errorf("column alias %q is not in column=SPELLING form", entry)
		}

		for _, spelling := range strings.Split(spellings, "|") {
			if spelling = strings.TrimSpace(spelling); spelling != "" {
				aliases[column] = append(aliases[column], spelling)
			}
		}
	}

	return aliases, nil
}
