package harness

// CaseResult is the outcome of linting one documented example.
type CaseResult struct {
	Title    string
	IsGood   bool
	Expected int
	Actual   int
	RuleIDs  []string
	Line     int
	Err      error
}

// Passed reports whether the case matched its documentation.
func (c CaseResult) Passed() bool {
	return c.Err == nil
}

// RuleReport is the per-case outcome of one CheckRule call.
type RuleReport struct {
	RuleID  string
	Profile string
	Cases   []CaseResult
}

// Failed returns the number of failing cases.
func (r *RuleReport) Failed() int {
	n := 0
	for _, c := range r.Cases {
		if !c.Passed() {
			n++
		}
	}
	return n
}
