package framework

import "strings"

// Results is the aggregate outcome of a test run. Tests holds every recorded check in the
// order it finished; Failures holds the failing subset in the same order.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single check. It is never modified after being recorded.
type TestResult struct {
	TestID   TestID
	Category Category
	Passed   bool
	Details  string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Passed() int {
	return len(r.Tests) - len(r.Failures)
}

func (r Results) Failed() int {
	return len(r.Failures)
}

// FailedCases returns the distinct top-level case names that had at least one failure, in
// the order their first failure was recorded.
func (r Results) FailedCases() []string {
	var ret []string
	seen := make(map[string]bool)
	for _, f := range r.Failures {
		c := f.TestID.Case()
		if c != "" && !seen[c] {
			seen[c] = true
			ret = append(ret, c)
		}
	}
	return ret
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name is the last path element, which is how results are displayed in reports.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Case is the first path element, which identifies the top-level test case.
func (t TestID) Case() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[0]
}
