package suite

import (
	"fmt"
	"slices"
)

// RuleCoverage is how often one rule is documented.
type RuleCoverage struct {
	RuleID    string
	Locations []string // file:line of every section
}

// Sections returns the number of documenting sections.
func (c RuleCoverage) Sections() int {
	return len(c.Locations)
}

// CoverageReport relates a built-in profile to the rules documents.
type CoverageReport struct {
	Profile string
	Rules   []RuleCoverage // every enabled rule of the profile, sorted
	Unknown []string       // documented rules the profile does not configure
}

// Missing returns the enabled rules without a section.
func (c *CoverageReport) Missing() []string {
	var out []string
	for _, r := range c.Rules {
		if r.Sections() == 0 {
			out = append(out, r.RuleID)
		}
	}
	return out
}

// Duplicated returns the rules documented by more than one section.
func (c *CoverageReport) Duplicated() []RuleCoverage {
	var out []RuleCoverage
	for _, r := range c.Rules {
		if r.Sections() > 1 {
			out = append(out, r)
		}
	}
	return out
}

// Coverage reports, for every enabled rule of the built-in profile after
// overrides, the sections documenting it.
func (s *Suite) Coverage(profile string) (*CoverageReport, error) {
	rs, err := s.RuleSet(profile)
	if err != nil {
		return nil, err
	}
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	report := &CoverageReport{Profile: profile}
	for _, id := range rs.Enabled() {
		rc := RuleCoverage{RuleID: id}
		for _, sec := range doc.Sections(id) {
			rc.Locations = append(rc.Locations, fmt.Sprintf("%s:%d", sec.File, sec.Line))
		}
		report.Rules = append(report.Rules, rc)
	}

	configured := rs.Effective()
	for _, id := range doc.RuleIDs() {
		if _, ok := configured[id]; !ok && !slices.Contains(report.Unknown, id) {
			report.Unknown = append(report.Unknown, id)
		}
	}
	return report, nil
}
