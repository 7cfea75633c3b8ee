package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/vivastreet/backend-smoke-tests/logging"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
	pause      time.Duration
	casesRun   int
}

// Context is used similarly to *testing.T. It implements require.TestingT so that standard
// assertions from assert/require can be used, and has a Run method for nested checks.
//
// A Context records a TestResult when it finishes, unless it ran nested checks of its own
// and did not fail outside of them. That way a case made of several checks produces one
// result per check, while a case that crashes between checks still produces a failure
// under its own name.
type Context struct {
	env         *environment
	id          TestID
	category    Category
	debugLogger logging.CapturingLogger
	failed      bool
	details     string
	errors      []error
	subtests    int
	result      *TestResult
}

func newRootContext(filter Filter, testLogger TestLogger, pause time.Duration) *Context {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	return &Context{
		env: &environment{
			filter:     filter,
			testLogger: testLogger,
			pause:      pause,
		},
	}
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("test crashed: %v", r)
				c.debugLogger.Printf("stack trace:\n%s", string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		if c.isRoot() || (c.subtests > 0 && !c.failed) {
			return
		}
		c.record()
	}()

	action(c)
}

func (c *Context) record() {
	result := TestResult{
		TestID:   c.id,
		Category: c.category,
		Passed:   !c.failed,
		Details:  c.resultDetails(),
	}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if c.failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
	c.result = &result
}

func (c *Context) resultDetails() string {
	if !c.failed {
		return c.details
	}
	messages := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (c *Context) isRoot() bool {
	return len(c.id.Path) == 0
}

func (c *Context) ID() TestID {
	return c.id
}

func (c *Context) Category() Category {
	return c.category
}

// Run runs a nested check that inherits this context's category. It returns true if the
// check did not fail.
func (c *Context) Run(name string, action func(*Context)) bool {
	return c.RunCategory(name, c.category, action)
}

// RunCategory runs a nested check with an explicit category. Top-level cases are subject to
// the run's filter, and the configured pause is inserted between them.
func (c *Context) RunCategory(name string, category Category, action func(*Context)) bool {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.isRoot() {
		if c.env.filter != nil && !c.env.filter(id) {
			c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
			return false
		}
		if c.env.casesRun > 0 && c.env.pause > 0 {
			time.Sleep(c.env.pause)
		}
		c.env.casesRun++
	}
	c.env.testLogger.TestStarted(id)
	c.subtests++

	c1 := &Context{
		id:       id,
		env:      c.env,
		category: category,
	}
	c1.run(action)
	if c1.result != nil {
		c.env.testLogger.TestFinished(*c1.result, c1.debugLogger.Output())
	}
	return !c1.failed
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

// Pass sets the details shown for this check if it succeeds.
func (c *Context) Pass(details string) {
	c.details = details
}

// Fail marks the check as failed with the given details and exits it immediately.
func (c *Context) Fail(details string) {
	c.Errorf("%s", details)
	c.FailNow()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() logging.Logger {
	return &c.debugLogger
}

var testifyLabels = []string{"Error Trace", "Error", "Test", "Messages"}

// reformatError condenses the multi-line output of testify assertions into the assertion
// message itself, since source locations are not useful in a report.
func reformatError(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "Error Trace:") {
		return err
	}
	var parts []string
	current := ""
	for _, line := range strings.Split(msg, "\n") {
		content := strings.TrimSpace(line)
		unindented := strings.TrimLeft(line, "\t")
		for _, label := range testifyLabels {
			if strings.HasPrefix(unindented, label+":") {
				current = label
				content = strings.TrimSpace(unindented[len(label)+1:])
				break
			}
		}
		if content != "" && (current == "Error" || current == "Messages") {
			parts = append(parts, content)
		}
	}
	if len(parts) == 0 {
		return err
	}
	return errors.New(strings.Join(parts, " "))
}
