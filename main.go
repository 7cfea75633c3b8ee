package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vivastreet/backend-smoke-tests/apitests"
	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/framework"
	"github.com/vivastreet/backend-smoke-tests/logging"
)

func main() {
	app := cli.NewApp()
	app.Name = "backend-smoke-tests"
	app.Usage = "Smoke tests for the " + apitests.ServiceIdentifier
	app.Description = "Runs every API check in order against a live backend and prints a report. " +
		"Exits with status 1 if any check fails."
	app.Flags = flags
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	var params commandParams
	if err := params.Read(ctx); err != nil {
		return err
	}

	clientLogger := logging.WithPrefix(logging.DebugLogger(logging.NewConsoleLogger(params.debugAll)), "[http] ")
	apiClient := client.New(params.baseURL, params.timeout, clientLogger)

	fmt.Printf("Testing backend at: %s\n", apiClient.BaseURL())
	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)
	fmt.Println("Starting backend API tests")
	fmt.Println(strings.Repeat("=", 60))

	runner := framework.NewRunner(framework.RunnerOptions{
		Filter: params.filters.AsFilter,
		TestLogger: &ConsoleTestLogger{
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		Pause: params.pause,
	})
	results, err := apitests.RunTestSuite(runner, apiClient, apitests.NewSession(time.Now()))
	if err != nil {
		return err
	}

	fmt.Println()
	framework.WriteReport(os.Stdout, results)
	if !results.OK() {
		fmt.Printf("\nTo run only the failed cases again:\n  %s\n",
			rerunCommand(os.Args[0], params.baseURL, results.FailedCases()))
		return cli.Exit("", 1)
	}
	return nil
}
