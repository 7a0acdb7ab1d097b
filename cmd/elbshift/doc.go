// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

// Elbshift attaches or removes every instance of a RightScale server
// array to or from a load balancer. The attach/remove logic itself
// lives in RightScripts registered in the account; this tool selects
// the script for the requested operation and environment, triggers it
// across the array with a single multi-instance run, and polls the
// resulting task until it completes, fails, or the polling budget runs
// out. One invocation performs exactly one operation.
//
// Exit codes:
//
//	0  operation completed (or dry run)
//	1  operational failure: array not found, task failed, timeout
//	2  invalid flags or configuration
//
// Requires an OAuth2 refresh token via --refresh_token or
// ELBSHIFT_REFRESH_TOKEN.
package main
