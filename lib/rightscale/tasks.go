// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package rightscale

import "context"

// TaskStatus is a point-in-time snapshot of an asynchronous task.
type TaskStatus struct {
	// Name is the task identifier, e.g. "ae-50371283".
	Name string `json:"name"`

	// Summary is the task's free-text progress line, e.g.
	// "completed: all 4 instances done" or "failed: tag query timed
	// out". There is no status enum on the wire; callers classify the
	// summary by substring.
	Summary string `json:"summary"`

	// Detail is the accumulated audit output of the run so far.
	Detail string `json:"detail"`
}

// GetTask fetches the current status of a task. Every call is a fresh
// query; the API offers no subscription mechanism, so observing
// progress means polling this endpoint.
func (client *Client) GetTask(ctx context.Context, taskHref string) (*TaskStatus, error) {
	var status TaskStatus
	if err := client.get(ctx, taskHref, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
