// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package rightscale

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Text encodes a plain string as a typed script input value. Inputs
// carry a type prefix on the wire; "text:" marks a literal value.
// Other prefixes (cred:, env:) reference account objects and are not
// used by this tool.
func Text(value string) string {
	return "text:" + value
}

// Task identifies an asynchronous operation started by the API. A
// single task covers the whole fan-out of a multi-instance run.
type Task struct {
	// Href is the task's status endpoint, from the Location header of
	// the 202 response that started it.
	Href string
}

// RunExecutable runs a RightScript on every instance of a server
// array. The executable endpoints take form parameters, not JSON.
// Success is 202 Accepted with a Location header naming the task that
// tracks the fan-out; any other status is an *APIError.
func (client *Client) RunExecutable(ctx context.Context, arrayHref, scriptHref string, inputs map[string]string) (*Task, error) {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	// Each input is an adjacent inputs[][name]/inputs[][value] pair.
	// The pairing is positional, so the body is built by hand:
	// url.Values.Encode sorts by key and would separate the names
	// from the values.
	pairs := []string{"right_script_href=" + url.QueryEscape(scriptHref)}
	for _, name := range names {
		pairs = append(pairs, "inputs[][name]="+url.QueryEscape(name))
		pairs = append(pairs, "inputs[][value]="+url.QueryEscape(inputs[name]))
	}
	body := strings.Join(pairs, "&")

	response, err := client.do(ctx, http.MethodPost, arrayHref+"/multi_run_executable",
		strings.NewReader(body), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusAccepted {
		return nil, parseAPIError(response)
	}

	taskHref := response.Header.Get("Location")
	if taskHref == "" {
		return nil, fmt.Errorf("rightscale: %s accepted the run but returned no task Location", arrayHref)
	}

	return &Task{Href: taskHref}, nil
}

// ScriptHref returns the API href for a RightScript ID.
func ScriptHref(id int64) string {
	return fmt.Sprintf("/api/right_scripts/%d", id)
}
