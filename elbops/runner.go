// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hoistline/elbshift/lib/clock"
)

// API is the RightScale client surface a Runner needs.
// *rightscale.Client implements it.
type API interface {
	ArrayDirectory
	ScriptRunner
	TaskQuerier
}

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	// API performs the remote calls. Required.
	API API

	// Table maps operations to script IDs. Defaults to
	// DefaultScriptTable.
	Table ScriptTable

	// PollInterval is the pause between polling rounds. Defaults to
	// DefaultPollInterval.
	PollInterval time.Duration

	// PollRounds is the polling round ceiling. Defaults to
	// DefaultPollRounds.
	PollRounds int

	// Clock supplies the inter-round pause. Defaults to the real
	// clock.
	Clock clock.Clock

	// Logger receives progress. Defaults to slog.Default.
	Logger *slog.Logger
}

// Runner executes a complete attach or remove operation: resolve the
// script, locate the array, trigger the run, poll the task to a
// terminal state.
type Runner struct {
	dispatcher *Dispatcher
	poller     *Poller
	logger     *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(config RunnerConfig) (*Runner, error) {
	if config.API == nil {
		return nil, fmt.Errorf("elbops: RunnerConfig.API is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dispatcher, err := NewDispatcher(DispatcherConfig{
		Arrays:  config.API,
		Scripts: config.API,
		Table:   config.Table,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	poller, err := NewPoller(PollerConfig{
		Tasks:    config.API,
		Interval: config.PollInterval,
		Rounds:   config.PollRounds,
		Clock:    config.Clock,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &Runner{
		dispatcher: dispatcher,
		poller:     poller,
		logger:     logger,
	}, nil
}

// Run dispatches the request and waits for the resulting task to
// finish. Failures surface as the typed errors in this package; there
// is no retry or rollback, so a failed or timed-out run leaves the
// remote side in whatever state the script reached. Dry runs return
// nil after resolution with no remote calls made.
func (runner *Runner) Run(ctx context.Context, request Request) error {
	task, err := runner.dispatcher.Dispatch(ctx, request)
	if err != nil {
		return err
	}
	if task == nil {
		// Dry run: nothing was dispatched, nothing to await.
		return nil
	}

	if err := runner.poller.AwaitTask(ctx, task.Href); err != nil {
		return err
	}

	runner.logger.Info("operation complete",
		"operation", request.Operation.String(),
		"server_array", request.ServerArray,
		"elb", request.ELB)
	return nil
}
