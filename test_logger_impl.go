package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vivastreet/backend-smoke-tests/framework"
	"github.com/vivastreet/backend-smoke-tests/logging"
)

var (
	passLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel    = color.New(color.FgRed, color.Bold).SprintFunc()
	skippedLabel = color.New(color.FgYellow).SprintFunc()
	caseTitle    = color.New(color.Bold).SprintfFunc()
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	Output               io.Writer
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return color.Output
	}
	return c.Output
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	if len(id.Path) == 1 {
		fmt.Fprintf(c.out(), "\n%s\n", caseTitle("Testing %s...", id.Name()))
	}
}

// TestError does nothing, since every error is part of the details shown in TestFinished.
func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput logging.CapturedOutput) {
	out := c.out()
	if result.Passed {
		fmt.Fprintf(out, "%s: %s\n", passLabel("PASS"), result.TestID.Name())
	} else {
		fmt.Fprintf(out, "%s: %s\n", failLabel("FAIL"), result.TestID.Name())
	}
	if result.Details != "" {
		fmt.Fprintf(out, "   Details: %s\n", result.Details)
	}
	if len(debugOutput) > 0 &&
		((!result.Passed && c.DebugOutputOnFailure) || (result.Passed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "%s: %s\n", skippedLabel("SKIPPED"), id)
	} else {
		fmt.Fprintf(c.out(), "%s: %s (%s)\n", skippedLabel("SKIPPED"), id, reason)
	}
}
