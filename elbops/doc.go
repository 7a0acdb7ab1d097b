// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

// Package elbops orchestrates attaching and detaching server-array
// instances to and from an Elastic Load Balancer through the RightScale
// management API.
//
// The cloud provider owns the actual registration mechanics; RightScale
// exposes them as pre-registered RightScripts that run on every instance
// of a server array. This package's job is coordination, not mutation:
//
//  1. Resolve the (action, environment) pair to a script ID through a
//     ScriptTable ([ScriptTable.Resolve]).
//  2. Locate the target server array by exact name ([LocateServerArray]),
//     compensating for the API's inexact name filter.
//  3. Trigger the script across all instances of the array
//     ([Dispatcher.Dispatch]), yielding one asynchronous task.
//  4. Poll the task to completion within a bounded number of rounds
//     ([Poller.AwaitTask]).
//
// [Runner.Run] strings these together for the CLI. Failures surface as
// typed errors (ConfigurationError, NotFoundError, AmbiguousError,
// TaskFailedError, TimeoutError) so callers can map them to exit codes
// without string matching.
//
// There is no retry, rollback, or partial-success tracking: a failed or
// timed-out run reports the failure and leaves any outstanding remote
// work running. Operators re-run the command after fixing the cause.
package elbops
