package apitests

import (
	"errors"
	"fmt"

	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/framework"
)

type environment struct {
	client  *client.Client
	session *Session
}

// T represents a test case or a check within one.
//
// It implements the same basic functionality as Go's testing.T, outside of the Go test runner,
// on top of the lower-level framework package. It also carries the HTTP client for the backend
// and the session shared by every case in the run.
//
// To make assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T. Checks that want the failure details to read a particular way should use
// Failf instead.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a check. Its result is recorded under name as soon as it finishes. Run returns true
// if the check passed.
func (t *T) Run(name string, action func(*T)) bool {
	return t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

func (t *T) runCase(tc testCase) {
	t.context.RunCategory(tc.name, tc.category, func(c *framework.Context) {
		tc.action(&T{context: c, env: t.env})
	})
}

// Pass sets the details reported for this check if it does not fail.
func (t *T) Pass(format string, args ...interface{}) {
	t.context.Pass(fmt.Sprintf(format, args...))
}

// Failf fails the check with the given details and exits it immediately.
func (t *T) Failf(format string, args ...interface{}) {
	t.context.Fail(fmt.Sprintf(format, args...))
}

// Debug logs some debug output for the check. The output is passed to the test logger when the
// check finishes.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Session returns the state shared by all cases in this run.
func (t *T) Session() *Session {
	return t.env.session
}

// Call sends a request to the backend. It returns nil if the backend could not be reached, so
// the caller can report "No response".
//
// Any other client error means the request was malformed by the calling code; that is not a
// backend problem, so it panics and the runner records the case as crashed.
func (t *T) Call(method, endpoint string, options ...client.RequestOption) *client.Response {
	opts := append([]client.RequestOption{client.WithLogger(t.context.DebugLogger())}, options...)
	resp, err := t.env.client.Do(method, endpoint, opts...)
	if err != nil {
		var netErr *client.NetworkError
		if errors.As(err, &netErr) {
			t.Debug("no response: %s", netErr.Description())
			return nil
		}
		panic(err)
	}
	return resp
}
