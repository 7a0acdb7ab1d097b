// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for elbshift.
//
// Configuration is loaded from a single file specified by either the
// ELBSHIFT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search; when neither source names a file, the built-in defaults
// apply unchanged. Every operational input also arrives as a flag, so
// a config file is optional rather than required.
//
// The configuration file supports environment-specific sections
// (staging, prod) that override base api and poll values when
// [Config].Environment matches. The environment selected on the
// command line takes precedence over the file's environment key.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with API, Poll, and Scripts sections
//   - [Default] -- returns a Config with staging defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.ScriptTable] -- embedded script IDs merged with the
//     optional JSONC registry file
//
// This package depends only on the elbops types it configures.
package config
