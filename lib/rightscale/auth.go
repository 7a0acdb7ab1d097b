// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package rightscale

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/hoistline/elbshift/lib/secret"
)

// authenticator provides Authorization header values for API requests.
// The production implementation exchanges the long-lived refresh token
// for short-lived access tokens and renews them near expiry.
type authenticator interface {
	// AuthorizationHeader returns a valid Authorization header value
	// (e.g., "Bearer abc123"). This may trigger a token refresh if the
	// cached access token has expired.
	AuthorizationHeader(ctx context.Context) (string, error)
}

// refreshTokenAuth implements the OAuth 2.0 refresh-token grant
// against the account's /api/oauth2 endpoint via golang.org/x/oauth2.
// The token source caches the current access token and refreshes it
// automatically when it nears expiry.
type refreshTokenAuth struct {
	source oauth2.TokenSource
}

// newRefreshTokenAuth builds the token source. The token endpoint
// demands the same X-API-Version header as the rest of the API, so
// token requests go through a transport that injects it. The source
// captures a background context deliberately: token renewal is a
// client-lifetime concern, not tied to any single request.
func newRefreshTokenAuth(tokenURL, apiVersion string, refreshToken *secret.Buffer, httpClient *http.Client) *refreshTokenAuth {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	tokenClient := &http.Client{
		Transport: &apiVersionTransport{
			base:    httpClient.Transport,
			version: apiVersion,
		},
		Timeout: httpClient.Timeout,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenClient)

	return &refreshTokenAuth{
		source: conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken.String()}),
	}
}

func (auth *refreshTokenAuth) AuthorizationHeader(_ context.Context) (string, error) {
	token, err := auth.source.Token()
	if err != nil {
		return "", fmt.Errorf("refreshing access token: %w", err)
	}
	return "Bearer " + token.AccessToken, nil
}

// apiVersionTransport injects the X-API-Version header into token
// endpoint requests. RoundTrippers must not mutate the original
// request, so it is cloned first.
type apiVersionTransport struct {
	base    http.RoundTripper
	version string
}

func (transport *apiVersionTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	base := transport.base
	if base == nil {
		base = http.DefaultTransport
	}
	cloned := request.Clone(request.Context())
	cloned.Header.Set("X-API-Version", transport.version)
	return base.RoundTrip(cloned)
}
