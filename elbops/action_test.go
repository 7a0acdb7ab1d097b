// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"strings"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{"attach", ActionAttach, false},
		{"remove", ActionRemove, false},
		{"destroy", "", true},
		{"Attach", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		action, err := ParseAction(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseAction(%q): expected error", test.input)
			} else if !IsConfiguration(err) {
				t.Errorf("ParseAction(%q): error %v is not a ConfigurationError", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAction(%q): %v", test.input, err)
		}
		if action != test.want {
			t.Errorf("ParseAction(%q) = %q, want %q", test.input, action, test.want)
		}
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input   string
		want    Environment
		wantErr bool
	}{
		{"staging", Staging, false},
		{"prod", Prod, false},
		{"production", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		environment, err := ParseEnvironment(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseEnvironment(%q): expected error", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEnvironment(%q): %v", test.input, err)
		}
		if environment != test.want {
			t.Errorf("ParseEnvironment(%q) = %q, want %q", test.input, environment, test.want)
		}
	}
}

func TestOperationString(t *testing.T) {
	operation := Operation{ActionAttach, Staging}
	if got := operation.String(); got != "attach/staging" {
		t.Errorf("String() = %q, want %q", got, "attach/staging")
	}
}

func TestDefaultScriptTableResolve(t *testing.T) {
	table := DefaultScriptTable()
	tests := []struct {
		operation Operation
		want      int64
	}{
		{Operation{ActionAttach, Staging}, 438671001},
		{Operation{ActionAttach, Prod}, 438671003},
		{Operation{ActionRemove, Staging}, 396277001},
		{Operation{ActionRemove, Prod}, 396277003},
	}

	for _, test := range tests {
		id, err := table.Resolve(test.operation)
		if err != nil {
			t.Errorf("Resolve(%s): %v", test.operation, err)
			continue
		}
		if id != test.want {
			t.Errorf("Resolve(%s) = %d, want %d", test.operation, id, test.want)
		}
	}
}

func TestScriptTableResolveMissing(t *testing.T) {
	table := ScriptTable{
		ActionAttach: {Staging: 111},
	}

	_, err := table.Resolve(Operation{ActionRemove, Prod})
	if err == nil {
		t.Fatal("expected error for unregistered operation")
	}
	if !IsConfiguration(err) {
		t.Errorf("error %v is not a ConfigurationError", err)
	}

	// A zero ID counts as missing, not as script zero.
	table[ActionAttach][Prod] = 0
	if _, err := table.Resolve(Operation{ActionAttach, Prod}); err == nil {
		t.Error("expected error for zero script ID")
	}
}

func TestScriptTableValidate(t *testing.T) {
	if err := DefaultScriptTable().Validate(); err != nil {
		t.Errorf("default table should validate: %v", err)
	}

	incomplete := ScriptTable{
		ActionAttach: {Staging: 111, Prod: 222},
		ActionRemove: {Staging: 333},
	}
	err := incomplete.Validate()
	if err == nil {
		t.Fatal("expected error for incomplete table")
	}
	if !strings.Contains(err.Error(), "remove/prod") {
		t.Errorf("error %q does not name the missing operation", err)
	}
}
