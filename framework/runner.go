package framework

import (
	"errors"
	"time"
)

// DefaultPause is the delay between consecutive top-level cases.
const DefaultPause = time.Millisecond * 500

// ErrRunnerNotIdle is returned if Run is called on a Runner that has already been started.
var ErrRunnerNotIdle = errors.New("test runner has already been started")

type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

type RunnerOptions struct {
	// Filter selects which top-level cases run. Nil means all of them.
	Filter Filter
	// TestLogger receives progress callbacks. Nil means no output.
	TestLogger TestLogger
	// Pause is slept between consecutive top-level cases.
	Pause time.Duration
}

// Runner executes a single test run. Cases run one at a time on the calling goroutine; a
// Runner cannot be reused once it has started.
type Runner struct {
	options RunnerOptions
	state   State
	results Results
}

func NewRunner(options RunnerOptions) *Runner {
	return &Runner{options: options}
}

func (r *Runner) State() State {
	return r.state
}

// Results returns the results of a completed run, or empty results if it has not finished.
func (r *Runner) Results() Results {
	return r.results
}

// Run calls action with the root context, which should start each top-level case with
// RunCategory. Panics escaping a case are recorded as failures of that case, so Run always
// returns the full results of whatever was executed.
func (r *Runner) Run(action func(*Context)) (Results, error) {
	if r.state != StateIdle {
		return Results{}, ErrRunnerNotIdle
	}
	r.state = StateRunning

	root := newRootContext(r.options.Filter, r.options.TestLogger, r.options.Pause)
	root.run(action)

	r.results = root.env.results
	r.state = StateDone
	return r.results, nil
}
