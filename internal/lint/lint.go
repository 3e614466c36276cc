// Package lint adapts an external lint engine to the narrow interface the
// harness needs: lint one snippet, get its diagnostics back.
package lint

import (
	"context"

	"github.com/bearcnc/lintdoc/internal/domain"
)

// Linter lints a single source text under a fixed configuration.
// Implementations must not share mutable state between calls.
type Linter interface {
	Lint(ctx context.Context, source string) (*domain.LintResult, error)
}

// Func adapts a plain function to Linter.
type Func func(ctx context.Context, source string) (*domain.LintResult, error)

// Lint calls f.
func (f Func) Lint(ctx context.Context, source string) (*domain.LintResult, error) {
	return f(ctx, source)
}

// Severity values as reported by ESLint.
const (
	SeverityWarn  = 1
	SeverityError = 2
)

// NewResult builds a LintResult from diagnostics, deriving the counts from
// their severities.
func NewResult(diags ...domain.Diagnostic) *domain.LintResult {
	r := &domain.LintResult{Diagnostics: diags}
	for _, d := range diags {
		if d.Severity >= SeverityError || d.Fatal {
			r.ErrorCount++
		} else {
			r.WarningCount++
		}
	}
	return r
}
