// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build identity of the elbshift binary.
//
// Release builds stamp the identifiers via -ldflags:
//
//	go build -ldflags "-X github.com/hoistline/elbshift/lib/version.Version=v1.4.0"
//
// Unstamped builds fall back to the VCS metadata the Go toolchain embeds
// in the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at release time. Left empty, String falls back to the
// toolchain's embedded VCS metadata.
var (
	// Version is the semantic version of the release.
	Version = ""

	// GitCommit is the short commit SHA of the build.
	GitCommit = ""

	// BuildDate is the UTC date of the build.
	BuildDate = ""
)

// String returns the single-line build identity used by --version.
func String() string {
	release := Version
	if release == "" {
		release = "devel"
	}
	commit := GitCommit
	if commit == "" {
		var modified bool
		commit, modified = vcsRevision()
		if modified {
			commit += "-modified"
		}
	}
	switch {
	case commit == "":
		return release
	case BuildDate == "":
		return fmt.Sprintf("%s (%s)", release, commit)
	default:
		return fmt.Sprintf("%s (%s, %s)", release, commit, BuildDate)
	}
}

// Print writes the --version line for the named binary to standard
// output.
func Print(binary string) {
	fmt.Printf("%s %s\n", binary, String())
}

// vcsRevision reads the commit embedded by the Go toolchain. Both
// values are zero when the binary was built outside a checkout or with
// -buildvcs=false.
func vcsRevision() (revision string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	return revision, modified
}
