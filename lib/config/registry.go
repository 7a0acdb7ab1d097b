// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/jsonc"

	"github.com/hoistline/elbshift/elbops"
)

// ParseRegistry strips JSONC comments and trailing commas from data,
// then unmarshals the result into a ScriptTable. The format is a map
// of action name to a map of environment name to script ID, extended
// with // line comments, /* block comments */, and trailing commas:
//
//	{
//	  // RightScript IDs by action and environment.
//	  "attach": {"staging": 438671001, "prod": 438671003},
//	  "remove": {"staging": 396277001, "prod": 396277003},
//	}
//
// Unknown action or environment names are errors: a typo in the
// registry must not silently leave an operation on stale defaults.
func ParseRegistry(data []byte) (elbops.ScriptTable, error) {
	stripped := jsonc.ToJSON(data)

	var raw map[string]map[string]int64
	if err := json.Unmarshal(stripped, &raw); err != nil {
		return nil, fmt.Errorf("parsing script registry: %w", err)
	}

	table := make(elbops.ScriptTable, len(raw))
	for actionName, scripts := range raw {
		action, err := elbops.ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("script registry: %w", err)
		}
		table[action] = make(map[elbops.Environment]int64, len(scripts))

		// Deterministic iteration so the first error is stable.
		environmentNames := make([]string, 0, len(scripts))
		for environmentName := range scripts {
			environmentNames = append(environmentNames, environmentName)
		}
		sort.Strings(environmentNames)

		for _, environmentName := range environmentNames {
			environment, err := elbops.ParseEnvironment(environmentName)
			if err != nil {
				return nil, fmt.Errorf("script registry, action %q: %w", actionName, err)
			}
			id := scripts[environmentName]
			if id <= 0 {
				return nil, fmt.Errorf("script registry: %s/%s has non-positive script ID %d",
					actionName, environmentName, id)
			}
			table[action][environment] = id
		}
	}

	return table, nil
}

// LoadRegistry reads a JSONC script registry file from disk and parses
// it into a ScriptTable.
func LoadRegistry(path string) (elbops.ScriptTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script registry %s: %w", path, err)
	}

	table, err := ParseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}
