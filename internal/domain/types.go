package domain

// RuleDocSection is the slice of a rules document that belongs to one rule.
type RuleDocSection struct {
	RuleID string // Rule id from the section's reference tag
	Raw    string // Verbatim section text, bullet line included
	File   string
	Line   int // 1-based line of the bullet in File
}

// TestCase is one documented example extracted from a rule section.
type TestCase struct {
	Title          string // "<ruleId> case <n>"
	Code           string // Dedented snippet, directive line prepended when set
	IsGood         bool
	ExpectedErrors int
	Directive      string // Inline eslint directive from the hidden comment, if any
	Line           int    // 1-based line of the Good:/Bad: marker
}

// Extraction holds everything the harness needs to check one rule.
type Extraction struct {
	RuleID       string
	File         string
	Availability []string // Profile labels in document order
	TestCases    []TestCase
}

// Diagnostic is a single finding reported by the lint engine.
type Diagnostic struct {
	RuleID   string // Empty for fatal parse errors
	Severity int    // 1 = warning, 2 = error
	Message  string
	Line     int
	Column   int
	Fatal    bool
}

// LintResult is the engine output for one snippet.
type LintResult struct {
	Diagnostics  []Diagnostic
	ErrorCount   int
	WarningCount int
}

// Total returns errors plus warnings; some rules are configured at warn severity.
func (r *LintResult) Total() int {
	return r.ErrorCount + r.WarningCount
}

// RuleIDs returns the rule id of every diagnostic, in report order.
func (r *LintResult) RuleIDs() []string {
	ids := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		ids = append(ids, d.RuleID)
	}
	return ids
}
