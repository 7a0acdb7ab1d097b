// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package elbops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hoistline/elbshift/lib/rightscale"
)

// ELBNameInput is the script input that carries the load balancer
// name to the instances.
const ELBNameInput = "ELB_NAME"

// ScriptRunner is the remote execution surface the dispatcher needs.
// *rightscale.Client implements it.
type ScriptRunner interface {
	RunExecutable(ctx context.Context, arrayHref, scriptHref string, inputs map[string]string) (*rightscale.Task, error)
}

// Request describes one attach or remove run against a server array.
type Request struct {
	// Operation selects the script: attach or remove, staging or prod.
	Operation Operation

	// ServerArray is the exact name of the deployment group whose
	// instances are attached or removed.
	ServerArray string

	// ELB is the load balancer name passed to the script.
	ELB string

	// DryRun validates and resolves but makes no remote calls.
	DryRun bool
}

// Validate reports every problem with the request at once.
func (request *Request) Validate() error {
	var errs []error
	if _, err := ParseAction(string(request.Operation.Action)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseEnvironment(string(request.Operation.Environment)); err != nil {
		errs = append(errs, err)
	}
	if request.ServerArray == "" {
		errs = append(errs, &ConfigurationError{Reason: "server array name is required"})
	}
	if request.ELB == "" {
		errs = append(errs, &ConfigurationError{Reason: "load balancer name is required"})
	}
	return errors.Join(errs...)
}

// DispatcherConfig configures a Dispatcher.
type DispatcherConfig struct {
	// Arrays locates the target server array. Required.
	Arrays ArrayDirectory

	// Scripts triggers the script run. Required.
	Scripts ScriptRunner

	// Table maps operations to script IDs. Defaults to
	// DefaultScriptTable.
	Table ScriptTable

	// Logger receives dispatch progress. Defaults to slog.Default.
	Logger *slog.Logger
}

// Dispatcher resolves an operation to a script ID and triggers the
// script across every instance of the named server array.
type Dispatcher struct {
	arrays  ArrayDirectory
	scripts ScriptRunner
	table   ScriptTable
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher. The script table is validated
// up front so an incomplete table surfaces before any remote call.
func NewDispatcher(config DispatcherConfig) (*Dispatcher, error) {
	if config.Arrays == nil {
		return nil, fmt.Errorf("elbops: DispatcherConfig.Arrays is required")
	}
	if config.Scripts == nil {
		return nil, fmt.Errorf("elbops: DispatcherConfig.Scripts is required")
	}

	table := config.Table
	if table == nil {
		table = DefaultScriptTable()
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		arrays:  config.Arrays,
		scripts: config.Scripts,
		table:   table,
		logger:  logger,
	}, nil
}

// Dispatch validates the request, resolves its script, and runs the
// script on every instance of the named server array. The returned
// task tracks the whole fan-out; the remote API hands back one task
// per multi-instance run. A dry run stops after resolution, before
// the directory is even queried, and returns a nil task.
func (dispatcher *Dispatcher) Dispatch(ctx context.Context, request Request) (*rightscale.Task, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	scriptID, err := dispatcher.table.Resolve(request.Operation)
	if err != nil {
		return nil, err
	}

	if request.DryRun {
		// Log the resolved wire values: the script that would run and
		// the input exactly as it would be sent.
		dispatcher.logger.Info("dry run: skipping script dispatch",
			"operation", request.Operation.String(),
			"server_array", request.ServerArray,
			"script_href", rightscale.ScriptHref(scriptID),
			"elb_input", rightscale.Text(request.ELB))
		return nil, nil
	}

	array, err := LocateServerArray(ctx, dispatcher.arrays, request.ServerArray)
	if err != nil {
		return nil, err
	}

	inputs := map[string]string{
		ELBNameInput: rightscale.Text(request.ELB),
	}
	task, err := dispatcher.scripts.RunExecutable(ctx, array.Href(), rightscale.ScriptHref(scriptID), inputs)
	if err != nil {
		return nil, fmt.Errorf("elbops: running script %d on %q: %w", scriptID, request.ServerArray, err)
	}

	dispatcher.logger.Info("script run started",
		"operation", request.Operation.String(),
		"server_array", request.ServerArray,
		"instances", array.InstancesCount,
		"script_id", scriptID,
		"task", task.Href)
	return task, nil
}
