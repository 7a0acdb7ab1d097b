// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"testing"
)

func TestFromString(t *testing.T) {
	buffer, err := FromString("  token-with-padding\n")
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "token-with-padding" {
		t.Errorf("expected trimmed value, got %q", got)
	}
}

func TestFromString_Empty(t *testing.T) {
	if _, err := FromString(""); err == nil {
		t.Fatal("expected error for empty value")
	}
}

func TestFromString_OnlyWhitespace(t *testing.T) {
	if _, err := FromString(" \t\n"); err == nil {
		t.Fatal("expected error for whitespace-only value")
	}
}

func TestFromEnv(t *testing.T) {
	const name = "SECRET_SOURCES_TEST_TOKEN"
	t.Setenv(name, "env-token-value")

	buffer, err := FromEnv(name)
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "env-token-value" {
		t.Errorf("expected %q, got %q", "env-token-value", got)
	}

	// The variable should have been removed from the environment.
	if value, ok := os.LookupEnv(name); ok {
		t.Errorf("expected %s to be unset after FromEnv, still %q", name, value)
	}
}

func TestFromEnv_Unset(t *testing.T) {
	if _, err := FromEnv("SECRET_SOURCES_TEST_MISSING"); err == nil {
		t.Fatal("expected error for unset variable")
	}
}

func TestFromEnv_Empty(t *testing.T) {
	const name = "SECRET_SOURCES_TEST_EMPTY"
	t.Setenv(name, "")

	if _, err := FromEnv(name); err == nil {
		t.Fatal("expected error for empty variable")
	}
}
