// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"context"
	"fmt"

	"github.com/hoistline/elbshift/lib/rightscale"
)

// ArrayDirectory is the directory query surface the locator needs.
// *rightscale.Client implements it.
type ArrayDirectory interface {
	// ListServerArrays returns the arrays whose name matches the
	// filter. The match is inexact: the result may contain arrays
	// whose names merely contain the filter string.
	ListServerArrays(ctx context.Context, nameFilter string) ([]rightscale.ServerArray, error)
}

// LocateServerArray finds the server array whose name is exactly name.
// The directory's name filter is a substring match, so the candidates
// it returns are post-filtered by string equality: asking for "foo_sa"
// must not select "foo_sa1". Zero exact matches is a *NotFoundError
// even when the filter returned candidates; more than one exact match
// is an *AmbiguousError, since the account then has duplicate array
// names and picking one silently would mutate the wrong group.
func LocateServerArray(ctx context.Context, directory ArrayDirectory, name string) (*rightscale.ServerArray, error) {
	candidates, err := directory.ListServerArrays(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("elbops: listing server arrays named %q: %w", name, err)
	}

	var matches []rightscale.ServerArray
	for _, candidate := range candidates {
		if candidate.Name == name {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Name: name, Candidates: len(candidates)}
	case 1:
		array := matches[0]
		if array.Href() == "" {
			return nil, fmt.Errorf("elbops: server array %q has no self link", name)
		}
		return &array, nil
	default:
		return nil, &AmbiguousError{Name: name, Count: len(matches)}
	}
}
