package suite

import (
	"github.com/bearcnc/lintdoc/internal/harness"
)

// RuleResult is the outcome of checking one rule. Report is nil when the rule
// failed before any snippet was linted.
type RuleResult struct {
	RuleID string
	Report *harness.RuleReport
	Err    error
}

// Passed reports whether the rule was checked without failures.
func (r RuleResult) Passed() bool {
	return r.Err == nil
}

// ProfileReport collects the rule results of one profile.
type ProfileReport struct {
	Name       string
	ConfigFile string
	Rules      []RuleResult
}

// Failed returns the number of failing rules.
func (p *ProfileReport) Failed() int {
	n := 0
	for _, r := range p.Rules {
		if !r.Passed() {
			n++
		}
	}
	return n
}

func (p *ProfileReport) errors() []error {
	var errs []error
	for _, r := range p.Rules {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Report is the result of a suite run.
type Report struct {
	Documents []string
	Profiles  []*ProfileReport
}

// Totals returns the number of checked and failing rules across profiles.
func (r *Report) Totals() (checked, failed int) {
	for _, p := range r.Profiles {
		checked += len(p.Rules)
		failed += p.Failed()
	}
	return checked, failed
}
