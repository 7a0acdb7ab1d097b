// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/hoistline/elbshift/elbops"
	"github.com/hoistline/elbshift/lib/config"
	"github.com/hoistline/elbshift/lib/rightscale"
	"github.com/hoistline/elbshift/lib/secret"
	"github.com/hoistline/elbshift/lib/version"
)

// refreshTokenEnv names the environment variable consulted when
// --refresh_token is not given. Preferred over the flag: argv is
// visible to every process on the machine.
const refreshTokenEnv = "ELBSHIFT_REFRESH_TOKEN"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before flag parsing, matching the other
	// Hoistline binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("elbshift")
		return 0
	}

	arguments, err := parseArguments(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage()
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage()
		return 2
	}

	logger := newLogger(arguments.verbose)
	if runID, err := newRunID(); err == nil {
		logger = logger.With("run_id", runID)
	}

	// A .env file in the working directory supplies credentials during
	// development; absence is the normal case.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, logger, arguments)
}

func execute(ctx context.Context, logger *slog.Logger, arguments arguments) int {
	configuration, err := loadConfiguration(arguments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading configuration: %v\n", err)
		return 2
	}
	if err := configuration.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid configuration: %v\n", err)
		return 2
	}

	interval, err := configuration.PollInterval()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	table, err := configuration.ScriptTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	refreshToken, err := resolveRefreshToken(arguments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer refreshToken.Close()

	client, err := rightscale.NewClient(rightscale.Config{
		APIURL:       configuration.API.URL,
		APIVersion:   configuration.API.Version,
		OAuth2URL:    configuration.API.OAuth2URL,
		RefreshToken: refreshToken,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	runner, err := elbops.NewRunner(elbops.RunnerConfig{
		API:          client,
		Table:        table,
		PollInterval: interval,
		PollRounds:   configuration.Poll.Rounds,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	request := elbops.Request{
		Operation: elbops.Operation{
			Action:      arguments.action,
			Environment: configuration.Environment,
		},
		ServerArray: arguments.serverArray,
		ELB:         arguments.elb,
		DryRun:      arguments.dryRun,
	}

	logger.Info("starting operation",
		"operation", request.Operation.String(),
		"server_array", request.ServerArray,
		"elb", request.ELB,
		"dry_run", request.DryRun,
		"api_url", configuration.API.URL)

	if err := runner.Run(ctx, request); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if elbops.IsConfiguration(err) {
			return 2
		}
		return 1
	}
	return 0
}

// loadConfiguration loads the config file (from --config or
// ELBSHIFT_CONFIG, defaults otherwise) and layers the endpoint flags
// over it.
func loadConfiguration(arguments arguments) (*config.Config, error) {
	var configuration *config.Config
	var err error
	if arguments.configPath != "" {
		configuration, err = config.LoadFile(arguments.configPath, arguments.environment)
	} else {
		configuration, err = config.Load(arguments.environment)
	}
	if err != nil {
		return nil, err
	}

	if arguments.apiURL != "" {
		configuration.API.URL = arguments.apiURL
	}
	if arguments.apiVersion != "" {
		configuration.API.Version = arguments.apiVersion
	}
	if arguments.oauth2APIURL != "" {
		configuration.API.OAuth2URL = arguments.oauth2APIURL
	}
	return configuration, nil
}

// resolveRefreshToken takes the token from --refresh_token or, when
// the flag is absent, from ELBSHIFT_REFRESH_TOKEN.
func resolveRefreshToken(arguments arguments) (*secret.Buffer, error) {
	if arguments.refreshToken != "" {
		return secret.FromString(arguments.refreshToken)
	}
	token, err := secret.FromEnv(refreshTokenEnv)
	if err != nil {
		return nil, fmt.Errorf("refresh token is required (--refresh_token or %s): %w", refreshTokenEnv, err)
	}
	return token, nil
}
