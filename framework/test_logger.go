package framework

import "github.com/vivastreet/backend-smoke-tests/logging"

// TestLogger receives progress notifications during a run. TestFinished is only called for
// contexts that recorded a result.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(result TestResult, debugOutput logging.CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                              {}
func (n nullTestLogger) TestError(TestID, error)                         {}
func (n nullTestLogger) TestFinished(TestResult, logging.CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                      {}
