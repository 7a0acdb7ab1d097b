// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"os"
	"strings"
)

// FromString copies a secret supplied as a process argument into a
// locked buffer. Go strings are immutable, so the source value itself
// cannot be scrubbed; the argv copy remains visible in /proc until the
// process exits. Leading/trailing whitespace is trimmed before storing.
// Returns an error if the value is empty after trimming.
func FromString(value string) (*Buffer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, fmt.Errorf("secret is empty")
	}
	return NewFromBytes([]byte(trimmed))
}

// FromEnv reads a secret from the named environment variable and then
// unsets it, so the value no longer appears in the process environment
// for the rest of the run. Returns an error if the variable is unset
// or empty after trimming.
func FromEnv(name string) (*Buffer, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil, fmt.Errorf("environment variable %s is not set", name)
	}
	buffer, err := FromString(value)
	if err != nil {
		return nil, fmt.Errorf("environment variable %s: %w", name, err)
	}
	if err := os.Unsetenv(name); err != nil {
		buffer.Close()
		return nil, fmt.Errorf("unsetting %s: %w", name, err)
	}
	return buffer, nil
}
