package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const noCriticalIssues = "No critical issues found - backend is functioning properly"

// Indicator is a coarse yes/no statement about the backend derived from the results.
type Indicator struct {
	Name string
	OK   bool
}

// SuccessRate returns the percentage of recorded checks that passed. It is 0 when nothing
// was recorded.
func SuccessRate(r Results) float64 {
	total := len(r.Tests)
	if total == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(total) * 100
}

// CriticalFindings returns one message per critical category that has a failing check, in
// a fixed order. Categories with no recorded checks never raise a finding.
func CriticalFindings(r Results) []string {
	failedCategories := make(map[Category]bool)
	for _, f := range r.Failures {
		failedCategories[f.Category] = true
	}
	var ret []string
	for _, c := range criticalCategories {
		if failedCategories[c] {
			ret = append(ret, c.CriticalFinding())
		}
	}
	return ret
}

// ServiceIndicators summarizes backend capabilities that are only observable indirectly.
// Token authentication is considered working if a token-auth check passed; the rest are
// considered working if anything at all passed.
func ServiceIndicators(r Results) []Indicator {
	anyPassed := r.Passed() > 0
	tokenAuth := false
	for _, t := range r.Tests {
		if t.Passed && t.Category == CategoryTokenAuth {
			tokenAuth = true
			break
		}
	}
	return []Indicator{
		{Name: "Spanish localization", OK: anyPassed},
		{Name: "Euro currency", OK: anyPassed},
		{Name: "JWT authentication", OK: tokenAuth},
		{Name: "Database connection", OK: anyPassed},
	}
}

// WriteReport writes the final summary of a run. The output depends only on r, so writing
// the same results twice produces identical text.
func WriteReport(w io.Writer, r Results) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("TEST SUMMARY")
	t.AppendHeader(table.Row{"Passed", "Failed", "Success Rate"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Success Rate", Align: text.AlignRight},
	})
	t.AppendRow(table.Row{r.Passed(), r.Failed(), fmt.Sprintf("%.1f%%", SuccessRate(r))})
	t.SetStyle(table.StyleLight)
	t.Render()

	if len(r.Failures) > 0 {
		fmt.Fprintf(w, "\nFAILED TESTS (%d):\n", len(r.Failures))
		for _, f := range r.Failures {
			fmt.Fprintf(w, "   • %s: %s\n", f.TestID.Name(), f.Details)
		}
	}

	fmt.Fprintln(w, "\nCRITICAL FINDINGS:")
	findings := CriticalFindings(r)
	if len(findings) == 0 {
		fmt.Fprintf(w, "   %s\n", noCriticalIssues)
	}
	for _, finding := range findings {
		fmt.Fprintf(w, "   %s\n", finding)
	}

	fmt.Fprintln(w)
	for _, ind := range ServiceIndicators(r) {
		status := "Working"
		if !ind.OK {
			status = "Issues detected"
		}
		fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(ind.Name), status)
	}
}
