// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hoistline/elbshift/lib/clock"
	"github.com/hoistline/elbshift/lib/rightscale"
)

// Default polling cadence: one-minute rounds with a twenty-round
// ceiling, an effective budget of twenty minutes per operation.
const (
	DefaultPollInterval = time.Minute
	DefaultPollRounds   = 20
)

// TaskQuerier is the task status surface the poller needs.
// *rightscale.Client implements it.
type TaskQuerier interface {
	GetTask(ctx context.Context, taskHref string) (*rightscale.TaskStatus, error)
}

// taskState classifies a task's free-text summary.
type taskState int

const (
	taskPending taskState = iota
	taskCompleted
	taskFailed
)

// classifyTaskSummary maps a task summary to a polling state. The API
// exposes no structured state field, only prose; "completed" and
// "failed" are the stable vocabulary, and anything else (queued,
// percentages, audit text) counts as still running.
func classifyTaskSummary(summary string) taskState {
	lower := strings.ToLower(summary)
	switch {
	case strings.Contains(lower, "completed"):
		return taskCompleted
	case strings.Contains(lower, "failed"):
		return taskFailed
	default:
		return taskPending
	}
}

// PollerConfig configures a Poller.
type PollerConfig struct {
	// Tasks queries task status. Required.
	Tasks TaskQuerier

	// Interval is the pause between polling rounds. Defaults to
	// DefaultPollInterval.
	Interval time.Duration

	// Rounds is the ceiling on polling rounds before the operation
	// times out. Defaults to DefaultPollRounds.
	Rounds int

	// Clock supplies the inter-round pause. Defaults to the real
	// clock.
	Clock clock.Clock

	// Logger receives per-round progress. Defaults to slog.Default.
	Logger *slog.Logger
}

// Poller drives asynchronous tasks to a terminal state by querying
// their status summaries in bounded rounds.
type Poller struct {
	tasks    TaskQuerier
	interval time.Duration
	rounds   int
	clock    clock.Clock
	logger   *slog.Logger
}

// NewPoller creates a Poller.
func NewPoller(config PollerConfig) (*Poller, error) {
	if config.Tasks == nil {
		return nil, fmt.Errorf("elbops: PollerConfig.Tasks is required")
	}
	if config.Interval < 0 {
		return nil, fmt.Errorf("elbops: PollerConfig.Interval must not be negative")
	}
	if config.Rounds < 0 {
		return nil, fmt.Errorf("elbops: PollerConfig.Rounds must not be negative")
	}

	poller := &Poller{
		tasks:    config.Tasks,
		interval: config.Interval,
		rounds:   config.Rounds,
		clock:    config.Clock,
		logger:   config.Logger,
	}
	if poller.interval == 0 {
		poller.interval = DefaultPollInterval
	}
	if poller.rounds == 0 {
		poller.rounds = DefaultPollRounds
	}
	if poller.clock == nil {
		poller.clock = clock.Real()
	}
	if poller.logger == nil {
		poller.logger = slog.Default()
	}
	return poller, nil
}

// AwaitTasks polls every task until all complete. Tasks are polled in
// a stable order each round, pending ones only. One failed task aborts
// the batch immediately with a *TaskFailedError, skipping the rest of
// that round; tasks still pending when the round counter reaches the
// ceiling abort with a *TimeoutError. The ceiling counts rounds, not
// wall time, so the effective budget is rounds times the interval.
// Neither outcome cancels anything server-side: remote tasks keep
// running after a timeout or failure here.
func (poller *Poller) AwaitTasks(ctx context.Context, taskHrefs []string) error {
	pending := slices.Clone(taskHrefs)
	for round := 1; ; round++ {
		remaining := make([]string, 0, len(pending))
		for _, href := range pending {
			status, err := poller.tasks.GetTask(ctx, href)
			if err != nil {
				return fmt.Errorf("elbops: polling task %s: %w", href, err)
			}
			switch classifyTaskSummary(status.Summary) {
			case taskCompleted:
				poller.logger.Debug("task completed",
					"task", href, "summary", status.Summary)
			case taskFailed:
				return &TaskFailedError{Href: href, Summary: status.Summary}
			default:
				poller.logger.Debug("task pending",
					"task", href, "round", round, "summary", status.Summary)
				remaining = append(remaining, href)
			}
		}
		pending = remaining
		if len(pending) == 0 {
			return nil
		}
		if round >= poller.rounds {
			return &TimeoutError{
				Rounds:   poller.rounds,
				Interval: poller.interval,
				Pending:  pending,
			}
		}

		select {
		case <-poller.clock.After(poller.interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// AwaitTask polls a single task to completion, then queries it once
// more so the final summary lands in the log at info level.
func (poller *Poller) AwaitTask(ctx context.Context, taskHref string) error {
	if err := poller.AwaitTasks(ctx, []string{taskHref}); err != nil {
		return err
	}

	status, err := poller.tasks.GetTask(ctx, taskHref)
	if err != nil {
		// The task already completed; losing the closing log line
		// is not a failure.
		poller.logger.Debug("final task query failed", "task", taskHref, "error", err)
		return nil
	}
	poller.logger.Info("task finished", "task", taskHref, "summary", status.Summary)
	return nil
}
