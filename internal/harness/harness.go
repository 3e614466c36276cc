// Package harness checks that the examples in a rules document produce the
// diagnostics the document claims when run through a lint engine.
package harness

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bearcnc/lintdoc/internal/domain"
	"github.com/bearcnc/lintdoc/internal/lint"
	"github.com/bearcnc/lintdoc/internal/parser"
)

// Options configures a Runner.
type Options struct {
	DocPaths         []string         // Rules documents, read once by New
	Document         *parser.Document // Preloaded document; DocPaths is ignored when set
	Profile          string           // Label checked against each rule's availability
	GlobalDirectives []string         // Fragments wrapped into one directive comment per snippet
	CodeLanguages    []string         // Fence languages treated as snippets
	Verbose          bool             // Log every engine result at info level
	Log              *logrus.Logger
}

// Runner checks rules against one configuration handle and profile.
type Runner struct {
	doc    *parser.Document
	linter lint.Linter
	opts   Options
	log    *logrus.Entry
}

// New loads the rules documents and returns a Runner bound to linter.
func New(opts Options, linter lint.Linter) (*Runner, error) {
	if opts.Profile == "" {
		return nil, domain.NewError("config", "", 0, "profile must not be empty", nil)
	}
	if linter == nil {
		return nil, domain.NewError("config", "", 0, "linter must not be nil", nil)
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}

	doc := opts.Document
	if doc == nil {
		var err error
		doc, err = parser.Load(opts.DocPaths, parser.WithCodeLanguages(opts.CodeLanguages...))
		if err != nil {
			return nil, err
		}
	}

	return &Runner{
		doc:    doc,
		linter: linter,
		opts:   opts,
		log:    opts.Log.WithField("profile", opts.Profile),
	}, nil
}

// Document returns the loaded rules document.
func (r *Runner) Document() *parser.Document {
	return r.doc
}

// Profile returns the profile label under test.
func (r *Runner) Profile() string {
	return r.opts.Profile
}

type checkOptions struct {
	ignoreGlobal bool
}

// CheckOption adjusts a single CheckRule call.
type CheckOption func(*checkOptions)

// WithoutGlobalConfig skips the global directive wrapping for the call. Use
// it for rules the global directives would silence.
func WithoutGlobalConfig() CheckOption {
	return func(o *checkOptions) { o.ignoreGlobal = true }
}

// IgnoreGlobalConfig is WithoutGlobalConfig when ignore is true.
func IgnoreGlobalConfig(ignore bool) CheckOption {
	return func(o *checkOptions) { o.ignoreGlobal = ignore }
}

// Wrap prepends the global directive comment to code.
func (r *Runner) Wrap(code string) string {
	if len(r.opts.GlobalDirectives) == 0 {
		return code
	}
	return parser.DirectiveComment(strings.Join(r.opts.GlobalDirectives, ", ")) + "\n" + code
}

// CheckRule extracts the documented cases for ruleID and lints each one in
// document order. Documentation errors (missing section, availability,
// good/bad inconsistency) fail before the engine is called. Case mismatches
// are collected and returned together after the last case; an engine error
// stops the run.
func (r *Runner) CheckRule(ctx context.Context, ruleID string, opts ...CheckOption) (*RuleReport, error) {
	var co checkOptions
	for _, opt := range opts {
		opt(&co)
	}
	log := r.log.WithField("rule", ruleID)

	ext, err := r.doc.Extract(ruleID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(ext.Availability, r.opts.Profile) {
		return nil, domain.NewKindError(domain.ErrAvailabilityMismatch, "check", ruleID,
			fmt.Sprintf("profile %q is not available (documented: %s)", r.opts.Profile, formatList(ext.Availability))).At(ext.File, 0)
	}

	if err := checkConsistency(ext); err != nil {
		return nil, err
	}

	report := &RuleReport{RuleID: ruleID, Profile: r.opts.Profile}
	var failures []error

	for _, tc := range ext.TestCases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		code := tc.Code
		if !co.ignoreGlobal {
			code = r.Wrap(code)
		}

		res, err := r.linter.Lint(ctx, code)
		if err == nil && res == nil {
			err = domain.NewKindError(domain.ErrEngine, "lint", ruleID, "linter returned no result").At(ext.File, tc.Line)
		}
		if err != nil {
			return report, fmt.Errorf("%s: %w", tc.Title, err)
		}
		r.logResult(log, tc, code, res)

		cr := CaseResult{
			Title:    tc.Title,
			IsGood:   tc.IsGood,
			Expected: tc.ExpectedErrors,
			Actual:   res.Total(),
			RuleIDs:  res.RuleIDs(),
			Line:     tc.Line,
		}
		cr.Err = compare(ruleID, ext.File, tc, res)
		if cr.Err != nil {
			failures = append(failures, cr.Err)
		}
		report.Cases = append(report.Cases, cr)
	}

	if len(failures) > 0 {
		log.Warnf("%d of %d case(s) failed", len(failures), len(ext.TestCases))
		return report, errors.Join(failures...)
	}
	log.Debugf("%d case(s) passed", len(ext.TestCases))
	return report, nil
}

// checkConsistency enforces expectedErrors > 0 <=> Bad: for every case.
func checkConsistency(ext *domain.Extraction) error {
	var errs []error
	for _, tc := range ext.TestCases {
		var msg string
		switch {
		case tc.ExpectedErrors > 0 && tc.IsGood:
			msg = fmt.Sprintf("Good: example expects %d error(s); it should be a Bad: example", tc.ExpectedErrors)
		case tc.ExpectedErrors == 0 && !tc.IsGood:
			msg = "Bad: example expects 0 errors; it should be a Good: example"
		default:
			continue
		}
		errs = append(errs, domain.NewKindError(domain.ErrInvariantViolation, "check", ext.RuleID, msg).
			At(ext.File, tc.Line).ForCase(tc.Title))
	}
	return errors.Join(errs...)
}

// compare checks one lint result against the documented expectation.
func compare(ruleID, file string, tc domain.TestCase, res *domain.LintResult) error {
	if total := res.Total(); total != tc.ExpectedErrors {
		return domain.NewKindError(domain.ErrCountMismatch, "check", ruleID,
			fmt.Sprintf("expected %d error(s), got %d %s", tc.ExpectedErrors, total, formatRuleIDs(res))).
			At(file, tc.Line).ForCase(tc.Title)
	}
	if tc.ExpectedErrors == 0 {
		return nil
	}
	var foreign []string
	for _, d := range res.Diagnostics {
		if d.RuleID != ruleID {
			foreign = append(foreign, displayRuleID(d.RuleID))
		}
	}
	if len(foreign) > 0 {
		return domain.NewKindError(domain.ErrRuleAttributionMismatch, "check", ruleID,
			fmt.Sprintf("expected only %s diagnostics, got %s", ruleID, formatList(foreign))).
			At(file, tc.Line).ForCase(tc.Title)
	}
	return nil
}

func (r *Runner) logResult(log *logrus.Entry, tc domain.TestCase, code string, res *domain.LintResult) {
	level := logrus.DebugLevel
	if r.opts.Verbose {
		level = logrus.InfoLevel
	}
	if !log.Logger.IsLevelEnabled(level) {
		return
	}
	entry := log.WithFields(logrus.Fields{
		"case":     tc.Title,
		"errors":   res.ErrorCount,
		"warnings": res.WarningCount,
	})
	entry.Logf(level, "linted snippet:\n%s", code)
	for _, d := range res.Diagnostics {
		entry.Logf(level, "  %d:%d %s %s", d.Line, d.Column, displayRuleID(d.RuleID), d.Message)
	}
}

func formatRuleIDs(res *domain.LintResult) string {
	if len(res.Diagnostics) == 0 {
		return "(no diagnostics)"
	}
	ids := make([]string, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		ids = append(ids, displayRuleID(d.RuleID))
	}
	return formatList(ids)
}

func displayRuleID(id string) string {
	if id == "" {
		return "(parse error)"
	}
	return id
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "[" + strings.Join(items, ", ") + "]"
}
