// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"context"
	"errors"
	"testing"

	"github.com/hoistline/elbshift/lib/rightscale"
)

// fakeDirectory serves a fixed candidate list, recording the filter.
type fakeDirectory struct {
	arrays     []rightscale.ServerArray
	err        error
	calls      int
	lastFilter string
}

func (directory *fakeDirectory) ListServerArrays(ctx context.Context, nameFilter string) ([]rightscale.ServerArray, error) {
	directory.calls++
	directory.lastFilter = nameFilter
	if directory.err != nil {
		return nil, directory.err
	}
	return directory.arrays, nil
}

func selfLink(href string) []rightscale.Link {
	return []rightscale.Link{{Rel: "self", Href: href}}
}

func TestLocateServerArray_ExactMatchAmongPrefixMatches(t *testing.T) {
	// The directory filter is a substring match, so asking for
	// "foo_sa" also returns "foo_sa1". Only the exact name wins.
	directory := &fakeDirectory{arrays: []rightscale.ServerArray{
		{Name: "foo_sa1", Links: selfLink("/api/server_arrays/1")},
		{Name: "foo_sa", Links: selfLink("/api/server_arrays/2")},
	}}

	array, err := LocateServerArray(context.Background(), directory, "foo_sa")
	if err != nil {
		t.Fatalf("LocateServerArray: %v", err)
	}
	if array.Name != "foo_sa" {
		t.Errorf("Name = %q, want %q", array.Name, "foo_sa")
	}
	if got := array.Href(); got != "/api/server_arrays/2" {
		t.Errorf("Href() = %q, want %q", got, "/api/server_arrays/2")
	}
	if directory.lastFilter != "foo_sa" {
		t.Errorf("filter = %q, want %q", directory.lastFilter, "foo_sa")
	}
}

func TestLocateServerArray_NoExactMatch(t *testing.T) {
	directory := &fakeDirectory{arrays: []rightscale.ServerArray{
		{Name: "foo_sa1", Links: selfLink("/api/server_arrays/1")},
		{Name: "foo_sandbox", Links: selfLink("/api/server_arrays/3")},
	}}

	_, err := LocateServerArray(context.Background(), directory, "foo_sa")
	if err == nil {
		t.Fatal("expected error when no candidate matches exactly")
	}
	if !IsNotFound(err) {
		t.Fatalf("error %v is not a NotFoundError", err)
	}

	var notFound *NotFoundError
	errors.As(err, &notFound)
	if notFound.Name != "foo_sa" {
		t.Errorf("Name = %q, want %q", notFound.Name, "foo_sa")
	}
	if notFound.Candidates != 2 {
		t.Errorf("Candidates = %d, want 2", notFound.Candidates)
	}
}

func TestLocateServerArray_EmptyDirectory(t *testing.T) {
	directory := &fakeDirectory{}

	_, err := LocateServerArray(context.Background(), directory, "foo_sa")
	if !IsNotFound(err) {
		t.Fatalf("error %v is not a NotFoundError", err)
	}
}

func TestLocateServerArray_DuplicateNames(t *testing.T) {
	directory := &fakeDirectory{arrays: []rightscale.ServerArray{
		{Name: "foo_sa", Links: selfLink("/api/server_arrays/1")},
		{Name: "foo_sa", Links: selfLink("/api/server_arrays/2")},
	}}

	_, err := LocateServerArray(context.Background(), directory, "foo_sa")
	if err == nil {
		t.Fatal("expected error for duplicate array names")
	}
	if !IsAmbiguous(err) {
		t.Fatalf("error %v is not an AmbiguousError", err)
	}

	var ambiguous *AmbiguousError
	errors.As(err, &ambiguous)
	if ambiguous.Count != 2 {
		t.Errorf("Count = %d, want 2", ambiguous.Count)
	}
}

func TestLocateServerArray_DirectoryError(t *testing.T) {
	directoryErr := errors.New("connection reset")
	directory := &fakeDirectory{err: directoryErr}

	_, err := LocateServerArray(context.Background(), directory, "foo_sa")
	if err == nil {
		t.Fatal("expected error when the directory query fails")
	}
	if !errors.Is(err, directoryErr) {
		t.Errorf("error %v does not wrap the directory error", err)
	}
}

func TestLocateServerArray_MissingSelfLink(t *testing.T) {
	directory := &fakeDirectory{arrays: []rightscale.ServerArray{
		{Name: "foo_sa"},
	}}

	_, err := LocateServerArray(context.Background(), directory, "foo_sa")
	if err == nil {
		t.Fatal("expected error for array without self link")
	}
}
