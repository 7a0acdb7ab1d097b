// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

// Package rightscale is a typed client for the RightScale API 1.5,
// covering the small surface elbshift needs: server array lookup,
// multi-instance script execution, and task status queries.
//
// Authentication uses the OAuth 2.0 refresh-token grant against the
// account's /api/oauth2 endpoint. Access tokens are cached and renewed
// automatically; the refresh token itself stays in a locked
// secret.Buffer supplied by the caller. Every request carries the
// X-API-Version header — the API rejects requests without it,
// including token requests.
//
// The API is asynchronous where it matters: running an executable on
// an array returns 202 Accepted with a Location header naming a task,
// and the task's status is a free-text summary that callers poll. See
// [Client.RunExecutable] and [Client.GetTask].
//
// Non-2xx responses surface as [*APIError] with the status code and
// the response body's message, so callers can branch on
// [IsNotFound] and [IsUnauthorized] without string matching.
package rightscale
