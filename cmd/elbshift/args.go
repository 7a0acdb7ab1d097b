// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/hoistline/elbshift/elbops"
)

// arguments holds the parsed command line.
type arguments struct {
	action elbops.Action

	// environment is empty when --env was not given; the config file
	// then decides.
	environment elbops.Environment

	serverArray string
	elb         string

	apiURL       string
	apiVersion   string
	oauth2APIURL string
	refreshToken string

	configPath string
	dryRun     bool
	verbose    bool
}

func parseArguments(args []string) (arguments, error) {
	var result arguments
	var add, remove bool
	var environment string

	flagSet := pflag.NewFlagSet("elbshift", pflag.ContinueOnError)
	// The caller prints the error and usage; pflag's own copy would
	// double up.
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&add, "add", false, "attach the server array instances to the load balancer")
	flagSet.BoolVar(&remove, "remove", false, "remove the server array instances from the load balancer")
	flagSet.StringVar(&environment, "env", "", "environment: staging or prod (default from config)")
	flagSet.StringVar(&result.serverArray, "server_array", "", "exact name of the server array")
	flagSet.StringVar(&result.elb, "elb", "", "load balancer name passed to the script")
	flagSet.StringVar(&result.apiURL, "api_url", "", "RightScale API endpoint (default from config)")
	flagSet.StringVar(&result.apiVersion, "api_version", "", "X-API-Version header value (default from config)")
	flagSet.StringVar(&result.oauth2APIURL, "oauth2_api_url", "", "OAuth2 token endpoint (default: <api_url>/api/oauth2)")
	flagSet.StringVar(&result.refreshToken, "refresh_token", "", "RightScale OAuth2 refresh token (prefer "+refreshTokenEnv+")")
	flagSet.StringVar(&result.configPath, "config", "", "config file path (default: $ELBSHIFT_CONFIG)")
	flagSet.BoolVar(&result.dryRun, "dryrun", false, "validate and resolve, but make no remote calls")
	flagSet.BoolVarP(&result.verbose, "verbose", "v", false, "enable debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return arguments{}, err
	}
	if help, _ := flagSet.GetBool("help"); help {
		return arguments{}, pflag.ErrHelp
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return arguments{}, fmt.Errorf("unexpected argument: %s", extra[0])
	}

	switch {
	case add && remove:
		return arguments{}, fmt.Errorf("--add and --remove are mutually exclusive")
	case add:
		result.action = elbops.ActionAttach
	case remove:
		result.action = elbops.ActionRemove
	default:
		return arguments{}, fmt.Errorf("one of --add or --remove is required")
	}

	if result.serverArray == "" {
		return arguments{}, fmt.Errorf("--server_array is required")
	}
	if result.elb == "" {
		return arguments{}, fmt.Errorf("--elb is required")
	}

	if environment != "" {
		parsed, err := elbops.ParseEnvironment(environment)
		if err != nil {
			return arguments{}, err
		}
		result.environment = parsed
	}

	return result, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `
usage: elbshift (--add | --remove) --server_array NAME --elb NAME [flags]

operation (exactly one required):
  --add                  attach the server array instances to the load balancer
  --remove               remove the server array instances from the load balancer

target:
  --server_array NAME    exact name of the server array
  --elb NAME             load balancer name passed to the script
  --env ENV              staging or prod (default from config)

connection:
  --api_url URL          RightScale API endpoint (default from config)
  --api_version V        X-API-Version header value (default from config)
  --oauth2_api_url URL   OAuth2 token endpoint (default: <api_url>/api/oauth2)
  --refresh_token TOKEN  OAuth2 refresh token (prefer %s)

other:
  --config PATH          config file path (default: $ELBSHIFT_CONFIG)
  --dryrun               validate and resolve, but make no remote calls
  -v, --verbose          enable debug logging
  --version              print version and exit
  -h, --help             show this help

exit codes:
  0  operation completed (or dry run)
  1  operational failure: array not found, task failed, timeout
  2  invalid flags or configuration

environment:
  %s  OAuth2 refresh token
  ELBSHIFT_CONFIG         config file path when --config is not given
`, refreshTokenEnv, refreshTokenEnv)
}
