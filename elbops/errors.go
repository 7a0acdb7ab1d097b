// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ConfigurationError reports an invalid or incomplete operation setup:
// an unknown action or environment, or a script table entry missing
// for a supported operation. These are caught before any remote call.
type ConfigurationError struct {
	Reason string
}

func (err *ConfigurationError) Error() string {
	return "configuration error: " + err.Reason
}

// NotFoundError reports that no server array matched the requested
// name exactly. Candidates counts the near matches the API's inexact
// name filter returned; a nonzero count usually means a typo or a
// partial name.
type NotFoundError struct {
	Name       string
	Candidates int
}

func (err *NotFoundError) Error() string {
	if err.Candidates > 0 {
		return fmt.Sprintf("server array %q not found (%d near matches, none exact)", err.Name, err.Candidates)
	}
	return fmt.Sprintf("server array %q not found", err.Name)
}

// AmbiguousError reports that more than one server array carries the
// requested name. Acting on an arbitrary one would be a silent wrong
// target, so the run aborts instead.
type AmbiguousError struct {
	Name  string
	Count int
}

func (err *AmbiguousError) Error() string {
	return fmt.Sprintf("server array name %q matches %d arrays; names must be unique to proceed", err.Name, err.Count)
}

// TaskFailedError reports that the remote API marked a task as failed.
// The run aborts on the first failed task without waiting for any
// others still in flight.
type TaskFailedError struct {
	// Href identifies the failed task.
	Href string
	// Summary is the API's free-text status at the time of failure.
	Summary string
}

func (err *TaskFailedError) Error() string {
	return fmt.Sprintf("task %s failed: %s", err.Href, err.Summary)
}

// TimeoutError reports that tasks were still pending when the polling
// round ceiling was reached. The effective wall-clock bound is
// Rounds * Interval. No cancellation is sent to the outstanding remote
// work; it keeps running unobserved, and the operator decides what to
// do next.
type TimeoutError struct {
	Rounds   int
	Interval time.Duration
	// Pending lists the hrefs of tasks that never reached a terminal
	// status.
	Pending []string
}

func (err *TimeoutError) Error() string {
	return fmt.Sprintf("tasks still pending after %d polling rounds (%s apart): %s",
		err.Rounds, err.Interval, strings.Join(err.Pending, ", "))
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var configurationError *ConfigurationError
	return errors.As(err, &configurationError)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// IsAmbiguous reports whether err is an AmbiguousError.
func IsAmbiguous(err error) bool {
	var ambiguousError *AmbiguousError
	return errors.As(err, &ambiguousError)
}

// IsTaskFailed reports whether err is a TaskFailedError.
func IsTaskFailed(err error) bool {
	var taskFailedError *TaskFailedError
	return errors.As(err, &taskFailedError)
}

// IsTimeout reports whether err is a TimeoutError.
func IsTimeout(err error) bool {
	var timeoutError *TimeoutError
	return errors.As(err, &timeoutError)
}
