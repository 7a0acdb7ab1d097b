// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package rightscale

import (
	"context"
	"net/url"
)

// ServerArray is a deployment group of identically configured cloud
// instances, as returned by the server array index endpoint.
type ServerArray struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	State          string `json:"state"`
	InstancesCount int    `json:"instances_count"`
	Links          []Link `json:"links"`
}

// Link is a rel/href pair from a resource's links array. The API
// identifies resources by href rather than bare ID.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// Href returns the array's self href, or "" if the links are missing
// it (which would indicate a malformed API response).
func (array *ServerArray) Href() string {
	for _, link := range array.Links {
		if link.Rel == "self" {
			return link.Href
		}
	}
	return ""
}

// ListServerArrays returns the server arrays whose name matches the
// filter. The API's name filter is a substring match, not an exact
// one: filtering on "frontend" also returns "frontend-canary".
// Callers that need an exact name must post-filter the result.
func (client *Client) ListServerArrays(ctx context.Context, nameFilter string) ([]ServerArray, error) {
	query := url.Values{}
	query.Add("filter[]", "name=="+nameFilter)

	var arrays []ServerArray
	if err := client.get(ctx, "/api/server_arrays?"+query.Encode(), &arrays); err != nil {
		return nil, err
	}
	return arrays, nil
}
