// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package rightscale

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the RightScale API.
// Error bodies are usually plain text; some endpoints return JSON
// with a message or error_description field. Either way the text
// lands in Message.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description from the response body.
	Message string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("rightscale: HTTP %d: %s", err.StatusCode, err.Message)
}

// parseAPIErrorFromBody parses a RightScale API error from a status
// code and response body.
func parseAPIErrorFromBody(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(body, &wireError) == nil {
		switch {
		case wireError.Message != "":
			apiError.Message = wireError.Message
		case wireError.ErrorDescription != "":
			apiError.Message = wireError.ErrorDescription
		}
	}
	if apiError.Message == "" {
		apiError.Message = strings.TrimSpace(string(body))
	}

	return apiError
}

// IsNotFound reports whether err is an API 404 Not Found response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsUnauthorized reports whether err is an API 401 response, which
// usually means the refresh token was revoked or belongs to another
// shard.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 401
}

// IsForbidden reports whether err is an API 403 response.
func IsForbidden(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 403
}
