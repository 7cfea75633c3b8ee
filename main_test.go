package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/vivastreet/backend-smoke-tests/framework"
	"github.com/vivastreet/backend-smoke-tests/logging"
)

func readParams(t *testing.T, args ...string) (commandParams, error) {
	t.Setenv(URLFlag.EnvVars[0], "")
	var params commandParams
	var readErr error
	app := cli.NewApp()
	app.Flags = flags
	app.Action = func(ctx *cli.Context) error {
		readErr = params.Read(ctx)
		return nil
	}
	require.NoError(t, app.Run(append([]string{"smoke"}, args...)))
	return params, readErr
}

func withoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestReadParamsDefaults(t *testing.T) {
	params, err := readParams(t, "--url", "http://localhost:8001/api")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8001/api", params.baseURL)
	assert.Equal(t, 10*time.Second, params.timeout)
	assert.Equal(t, framework.DefaultPause, params.pause)
	assert.False(t, params.filters.MustMatch.IsDefined())
	assert.False(t, params.debug)
}

func TestReadParamsFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("REACT_APP_BACKEND_URL=https://example.test\n"), 0o600))

	params, err := readParams(t, "--env-file", envFile, "--run", "^Auth", "--skip", "CORS", "--pause", "0s", "--debug")
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/api", params.baseURL)
	assert.Equal(t, time.Duration(0), params.pause)
	assert.True(t, params.debug)
	assert.True(t, params.filters.AsFilter(framework.TestID{Path: []string{"Auth errors"}}))
	assert.False(t, params.filters.AsFilter(framework.TestID{Path: []string{"CORS headers"}}))
	assert.False(t, params.filters.AsFilter(framework.TestID{Path: []string{"Health check"}}))
}

func TestReadParamsRejectsBadRegex(t *testing.T) {
	_, err := readParams(t, "--url", "http://localhost/api", "--run", "(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--run")
}

func TestReadParamsWithoutBackendURL(t *testing.T) {
	_, err := readParams(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestRerunCommand(t *testing.T) {
	cmd := rerunCommand("./smoke", "http://localhost:8001/api", []string{"Get current user", "Auth errors"})
	assert.Equal(t,
		`./smoke --url http://localhost:8001/api --run '^Get current user$' --run '^Auth errors$'`,
		cmd)
}

func TestRerunCommandSelectsOnlyFailedCases(t *testing.T) {
	failed := []string{"Get single profile", "Update profile"}
	var filters framework.RegexFilters
	for _, name := range failed {
		require.NoError(t, filters.MustMatch.Set("^"+regexp.QuoteMeta(name)+"$"))
	}
	assert.True(t, filters.AsFilter(framework.TestID{Path: []string{"Update profile"}}))
	assert.False(t, filters.AsFilter(framework.TestID{Path: []string{"Update profile later"}}))
	assert.Contains(t, rerunCommand("smoke", "http://x/api", failed), `'^Get single profile$'`)
}

func TestConsoleTestLoggerOutput(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{DebugOutputOnFailure: true, Output: &buf}

	var debug logging.CapturingLogger
	debug.Printf(">> GET http://localhost/api")

	logger.TestStarted(framework.TestID{Path: []string{"Health check"}})
	logger.TestStarted(framework.TestID{Path: []string{"Health check", "Health Check"}})
	logger.TestFinished(framework.TestResult{
		TestID:  framework.TestID{Path: []string{"Health check", "Health Check"}},
		Passed:  true,
		Details: "Backend is running and responding correctly",
	}, debug.Output())
	logger.TestFinished(framework.TestResult{
		TestID:  framework.TestID{Path: []string{"Auth errors", "No Token Error"}},
		Details: "Expected 401, got: 200",
	}, debug.Output())
	logger.TestSkipped(framework.TestID{Path: []string{"CORS headers"}}, "excluded by filter parameters")

	out := buf.String()
	assert.Contains(t, out, "Testing Health check...")
	assert.NotContains(t, out, "Testing Health Check...")
	assert.Contains(t, out, "PASS: Health Check\n   Details: Backend is running and responding correctly\n")
	assert.Contains(t, out, "FAIL: No Token Error\n   Details: Expected 401, got: 200\n")
	assert.Contains(t, out, "SKIPPED: CORS headers (excluded by filter parameters)")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("DEBUG")))
}
