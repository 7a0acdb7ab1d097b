// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"fmt"
	"sort"
)

// Action identifies a load-balancer operation.
type Action string

const (
	// ActionAttach registers array instances with the load balancer.
	ActionAttach Action = "attach"
	// ActionRemove deregisters array instances from the load balancer.
	ActionRemove Action = "remove"
)

// ParseAction converts a string into an Action. Returns a
// ConfigurationError for unknown values.
func ParseAction(value string) (Action, error) {
	switch Action(value) {
	case ActionAttach:
		return ActionAttach, nil
	case ActionRemove:
		return ActionRemove, nil
	}
	return "", &ConfigurationError{
		Reason: fmt.Sprintf("unknown action %q (expected %q or %q)", value, ActionAttach, ActionRemove),
	}
}

// Environment identifies the deployment environment an operation
// targets. Script IDs differ per environment because each environment
// registers its own RightScripts.
type Environment string

const (
	// Staging is the pre-production environment.
	Staging Environment = "staging"
	// Prod is the production environment.
	Prod Environment = "prod"
)

// ParseEnvironment converts a string into an Environment. Returns a
// ConfigurationError for unknown values.
func ParseEnvironment(value string) (Environment, error) {
	switch Environment(value) {
	case Staging:
		return Staging, nil
	case Prod:
		return Prod, nil
	}
	return "", &ConfigurationError{
		Reason: fmt.Sprintf("unknown environment %q (expected %q or %q)", value, Staging, Prod),
	}
}

// Operation is an (action, environment) pair, the unit the script
// table is keyed by.
type Operation struct {
	Action      Action
	Environment Environment
}

func (o Operation) String() string {
	return string(o.Action) + "/" + string(o.Environment)
}

// SupportedOperations enumerates every operation this tool performs.
// ScriptTable.Validate requires a script ID for each entry.
var SupportedOperations = []Operation{
	{ActionAttach, Staging},
	{ActionAttach, Prod},
	{ActionRemove, Staging},
	{ActionRemove, Prod},
}

// ScriptTable maps operations to the RightScript IDs that implement
// them. The scripts are registered out of band in the RightScale
// account; this tool only triggers them by ID.
type ScriptTable map[Action]map[Environment]int64

// DefaultScriptTable returns the script IDs for the standard account
// layout. A registry file (config scripts.registry_file) overrides
// individual entries.
func DefaultScriptTable() ScriptTable {
	return ScriptTable{
		ActionAttach: {
			Staging: 438671001,
			Prod:    438671003,
		},
		ActionRemove: {
			Staging: 396277001,
			Prod:    396277003,
		},
	}
}

// Resolve returns the script ID for an operation. A missing or zero
// entry is a ConfigurationError: the table is static and must cover
// every supported operation before any remote call is made.
func (t ScriptTable) Resolve(operation Operation) (int64, error) {
	scripts, ok := t[operation.Action]
	if ok {
		if id := scripts[operation.Environment]; id != 0 {
			return id, nil
		}
	}
	return 0, &ConfigurationError{
		Reason: fmt.Sprintf("no script registered for operation %s", operation),
	}
}

// Validate checks that the table has a script ID for every supported
// operation. Called at startup so an incomplete table aborts before
// any remote interaction.
func (t ScriptTable) Validate() error {
	var missing []string
	for _, operation := range SupportedOperations {
		if _, err := t.Resolve(operation); err != nil {
			missing = append(missing, operation.String())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ConfigurationError{
		Reason: fmt.Sprintf("script table is missing entries for: %v", missing),
	}
}
