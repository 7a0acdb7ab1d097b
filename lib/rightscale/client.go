// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package rightscale

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hoistline/elbshift/lib/clock"
	"github.com/hoistline/elbshift/lib/netutil"
	"github.com/hoistline/elbshift/lib/secret"
)

// defaultAPIURL is the base URL for the standard account shard.
const defaultAPIURL = "https://us-3.rightscale.com"

// defaultAPIVersion is the API version sent in the X-API-Version
// header. Pinning the version ensures consistent behavior as the API
// evolves.
const defaultAPIVersion = "1.5"

// Config holds configuration for creating a RightScale API Client.
type Config struct {
	// APIURL is the root URL for API requests. Defaults to
	// "https://us-3.rightscale.com". Must use HTTPS.
	APIURL string

	// APIVersion is the value of the X-API-Version header sent with
	// every request. Defaults to "1.5".
	APIVersion string

	// OAuth2URL is the token endpoint for the refresh-token grant.
	// Defaults to APIURL + "/api/oauth2". Must use HTTPS.
	OAuth2URL string

	// RefreshToken is the account's OAuth2 refresh token. Required.
	// The client reads it once during construction; the caller keeps
	// ownership and closes it when the process is done.
	RefreshToken *secret.Buffer

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	// Inject clock.Fake() in tests for deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed RightScale API 1.5 client with automatic access
// token renewal and structured error handling.
type Client struct {
	apiURL     string
	apiVersion string
	httpClient *http.Client
	auth       authenticator
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a RightScale API client from the given
// configuration. Returns an error if the configuration is invalid
// (missing refresh token, non-HTTPS URL).
func NewClient(config Config) (*Client, error) {
	// Resolve defaults.
	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	apiURL = strings.TrimRight(apiURL, "/")

	// Enforce HTTPS. The refresh token and every access token derived
	// from it transit this connection.
	if !strings.HasPrefix(apiURL, "https://") {
		return nil, fmt.Errorf("rightscale: API client requires HTTPS (got %q)", apiURL)
	}

	apiVersion := config.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	oauth2URL := config.OAuth2URL
	if oauth2URL == "" {
		oauth2URL = apiURL + "/api/oauth2"
	}
	if !strings.HasPrefix(oauth2URL, "https://") {
		return nil, fmt.Errorf("rightscale: OAuth2 endpoint requires HTTPS (got %q)", oauth2URL)
	}

	if config.RefreshToken == nil || config.RefreshToken.Len() == 0 {
		return nil, fmt.Errorf("rightscale: RefreshToken is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiURL:     apiURL,
		apiVersion: apiVersion,
		httpClient: httpClient,
		auth:       newRefreshTokenAuth(oauth2URL, apiVersion, config.RefreshToken, httpClient),
		clock:      clk,
		logger:     logger,
	}, nil
}

// do executes an authenticated API request. The path should be
// relative to the API URL (e.g., "/api/server_arrays"). Returns the
// raw response; the caller owns closing the body and interpreting the
// status code.
func (client *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	url := client.apiURL + path

	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("rightscale: creating request: %w", err)
	}

	authHeader, err := client.auth.AuthorizationHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("rightscale: authentication: %w", err)
	}
	request.Header.Set("Authorization", authHeader)

	request.Header.Set("X-API-Version", client.apiVersion)
	request.Header.Set("Accept", "application/json")
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	start := client.clock.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("rightscale: %s %s: %w", method, url, err)
	}

	client.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"duration", client.clock.Now().Sub(start),
	)

	return response, nil
}

// get executes a GET request and JSON-decodes a 2xx response body into
// result. Non-2xx responses return an *APIError.
func (client *Client) get(ctx context.Context, path string, result any) error {
	response, err := client.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return parseAPIError(response)
	}

	if err := netutil.DecodeResponse(response.Body, result); err != nil {
		return fmt.Errorf("rightscale: decoding %s response: %w", path, err)
	}
	return nil
}

// parseAPIError reads a RightScale API error from an HTTP response.
func parseAPIError(response *http.Response) *APIError {
	body, _ := netutil.ReadResponse(response.Body)
	return parseAPIErrorFromBody(response.StatusCode, body)
}
