package main

import (
	"regexp"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/config"
	"github.com/vivastreet/backend-smoke-tests/framework"
)

var (
	URLFlag = &cli.StringFlag{
		Name:    "url",
		EnvVars: []string{"BACKEND_URL"},
		Usage:   "API base URL of the backend, used as given (overrides the env file)",
	}
	EnvFileFlag = &cli.StringFlag{
		Name:  "env-file",
		Value: config.DefaultEnvFile,
		Usage: "env file to read the backend's root URL from",
	}
	EnvKeyFlag = &cli.StringFlag{
		Name:  "env-key",
		Value: config.DefaultEnvKey,
		Usage: "variable in the env file holding the backend's root URL",
	}
	TimeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Value: client.DefaultTimeout,
		Usage: "timeout for each request",
	}
	PauseFlag = &cli.DurationFlag{
		Name:  "pause",
		Value: framework.DefaultPause,
		Usage: "delay between test cases",
	}
	RunFlag = &cli.StringSliceFlag{
		Name:  "run",
		Usage: "regex pattern(s) to select test cases to run",
	}
	SkipFlag = &cli.StringSliceFlag{
		Name:  "skip",
		Usage: "regex pattern(s) to select test cases not to run",
	}
	DebugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "show request/response logs for failed checks",
	}
	DebugAllFlag = &cli.BoolFlag{
		Name:  "debug-all",
		Usage: "show request/response logs for all checks, and log every request to stderr",
	}
)

var flags = []cli.Flag{
	URLFlag,
	EnvFileFlag,
	EnvKeyFlag,
	TimeoutFlag,
	PauseFlag,
	RunFlag,
	SkipFlag,
	DebugFlag,
	DebugAllFlag,
}

type commandParams struct {
	baseURL  string
	timeout  time.Duration
	pause    time.Duration
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(ctx *cli.Context) error {
	baseURL, err := config.ResolveBaseURL(
		ctx.String(URLFlag.Name),
		ctx.String(EnvFileFlag.Name),
		ctx.String(EnvKeyFlag.Name),
	)
	if err != nil {
		return err
	}
	c.baseURL = baseURL
	c.timeout = ctx.Duration(TimeoutFlag.Name)
	c.pause = ctx.Duration(PauseFlag.Name)
	c.debug = ctx.Bool(DebugFlag.Name)
	c.debugAll = ctx.Bool(DebugAllFlag.Name)

	for _, p := range ctx.StringSlice(RunFlag.Name) {
		if err := c.filters.MustMatch.Set(p); err != nil {
			return errors.Wrapf(err, "--%s", RunFlag.Name)
		}
	}
	for _, p := range ctx.StringSlice(SkipFlag.Name) {
		if err := c.filters.MustNotMatch.Set(p); err != nil {
			return errors.Wrapf(err, "--%s", SkipFlag.Name)
		}
	}
	return nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns a shell command that runs only the given cases again against the same
// backend.
func rerunCommand(program, baseURL string, failedCases []string) string {
	var cmd commandBuilder
	cmd.add(program, "--"+URLFlag.Name, baseURL)
	for _, name := range failedCases {
		cmd.add("--"+RunFlag.Name, "^"+regexp.QuoteMeta(name)+"$")
	}
	return cmd.String()
}
