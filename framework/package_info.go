// Package framework contains the test harness infrastructure that does not depend on the
// API being tested.
//
// The general model is:
//
// 1. A Runner executes a fixed, ordered list of top-level cases one at a time, pausing
// briefly between them. Each case is tagged with a Category when it is defined.
//
// 2. There is a notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Every check inside a case produces exactly one TestResult.
//
// 3. Once the run is done, WriteReport turns the Results into a textual summary.
//
// The domain-specific code that knows what is being tested is responsible for issuing
// requests, validating responses, and carrying state from one case to the next.
package framework
