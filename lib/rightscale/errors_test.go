// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package rightscale

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseAPIErrorFromBody(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
	}{
		{
			name:        "plain text",
			statusCode:  404,
			body:        "NotFound: Couldn't find ServerArray with ID=99\n",
			wantMessage: "NotFound: Couldn't find ServerArray with ID=99",
		},
		{
			name:        "json message",
			statusCode:  422,
			body:        `{"message": "right_script_href is invalid"}`,
			wantMessage: "right_script_href is invalid",
		},
		{
			name:        "oauth error description",
			statusCode:  401,
			body:        `{"error": "invalid_grant", "error_description": "The refresh token is invalid"}`,
			wantMessage: "The refresh token is invalid",
		},
		{
			name:        "empty body",
			statusCode:  500,
			body:        "",
			wantMessage: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			apiError := parseAPIErrorFromBody(test.statusCode, []byte(test.body))
			if apiError.StatusCode != test.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiError.StatusCode, test.statusCode)
			}
			if apiError.Message != test.wantMessage {
				t.Errorf("Message = %q, want %q", apiError.Message, test.wantMessage)
			}
		})
	}
}

func TestAPIErrorPredicates(t *testing.T) {
	notFound := &APIError{StatusCode: 404, Message: "no such array"}
	unauthorized := &APIError{StatusCode: 401, Message: "token revoked"}
	forbidden := &APIError{StatusCode: 403, Message: "not allowed"}

	if !IsNotFound(notFound) {
		t.Error("IsNotFound(404) = false, want true")
	}
	if IsNotFound(unauthorized) {
		t.Error("IsNotFound(401) = true, want false")
	}
	if !IsUnauthorized(unauthorized) {
		t.Error("IsUnauthorized(401) = false, want true")
	}
	if !IsForbidden(forbidden) {
		t.Error("IsForbidden(403) = false, want true")
	}

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("listing arrays: %w", notFound)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound(wrapped 404) = false, want true")
	}

	if IsNotFound(errors.New("plain error")) {
		t.Error("IsNotFound(non-API error) = true, want false")
	}
}
