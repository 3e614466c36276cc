package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bearcnc/lintdoc/internal/domain"
)

const (
	availabilityLabel = "**Availability:**"
	hiddenCommentTag  = "[//]: #"
)

var (
	expectedErrorsPattern = regexp.MustCompile(`expectedErrors:\s*(\d+)`)
	inlineConfigPattern   = regexp.MustCompile(`eslint:\s*'([^']+)'`)
)

// Extract finds the single section documenting ruleID and returns its
// availability and test cases in document order.
func (d *Document) Extract(ruleID string) (*domain.Extraction, error) {
	sections := d.Sections(ruleID)
	switch len(sections) {
	case 0:
		return nil, domain.NewKindError(domain.ErrRuleNotFound, "parse", ruleID,
			fmt.Sprintf("no section tagged %s in %s", referenceTag(ruleID), strings.Join(d.Files(), ", ")))
	case 1:
	default:
		locs := make([]string, 0, len(sections))
		for _, s := range sections {
			locs = append(locs, fmt.Sprintf("%s:%d", s.File, s.Line))
		}
		return nil, domain.NewKindError(domain.ErrAmbiguousRule, "parse", ruleID,
			fmt.Sprintf("%d sections tagged %s (%s)", len(sections), referenceTag(ruleID), strings.Join(locs, ", ")))
	}
	section := sections[0]

	availability, err := parseAvailability(section)
	if err != nil {
		return nil, err
	}

	blocks := splitBlocks(section)
	if len(blocks) == 0 {
		return nil, domain.NewKindError(domain.ErrNoTestCases, "parse", ruleID,
			"section has no Good:/Bad: blocks").At(section.File, section.Line)
	}

	cases := make([]domain.TestCase, 0, len(blocks))
	for i, b := range blocks {
		title := fmt.Sprintf("%s case %d", ruleID, i+1)
		tc, err := d.parseBlock(ruleID, title, section.File, b)
		if err != nil {
			return nil, err
		}
		cases = append(cases, tc)
	}

	return &domain.Extraction{
		RuleID:       ruleID,
		File:         section.File,
		Availability: availability,
		TestCases:    cases,
	}, nil
}

// parseAvailability reads the backtick tokens of the Availability line,
// ignoring anything from the first parenthesis on.
//
//	**Availability:** `es5`, `es6` (since v2) -> [es5 es6]
func parseAvailability(section domain.RuleDocSection) ([]string, error) {
	for _, line := range splitLines(section.Raw) {
		if !strings.Contains(line, availabilityLabel) {
			continue
		}
		if i := strings.IndexByte(line, '('); i >= 0 {
			line = line[:i]
		}
		bits := strings.Split(line, "`")
		profiles := []string{}
		for i := 1; i < len(bits); i += 2 {
			profiles = append(profiles, bits[i])
		}
		return profiles, nil
	}
	return nil, domain.NewKindError(domain.ErrAvailabilityMissing, "parse", section.RuleID,
		fmt.Sprintf("no %s line", availabilityLabel)).At(section.File, section.Line)
}

func (d *Document) parseBlock(ruleID, title, file string, b block) (domain.TestCase, error) {
	tc := domain.TestCase{
		Title:  title,
		IsGood: b.isGood,
		Line:   b.line,
	}

	comment, ok := hiddenComment(b.text)
	if !ok {
		return tc, domain.NewKindError(domain.ErrMissingDirective, "parse", ruleID,
			fmt.Sprintf("no %q line in block", hiddenCommentTag)).At(file, b.line).ForCase(title)
	}

	m := expectedErrorsPattern.FindStringSubmatch(comment)
	if m == nil {
		return tc, domain.NewKindError(domain.ErrMissingExpectedErrors, "parse", ruleID,
			fmt.Sprintf("hidden comment %q has no expectedErrors", strings.TrimSpace(comment))).At(file, b.line).ForCase(title)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		e := domain.NewKindError(domain.ErrMissingExpectedErrors, "parse", ruleID,
			"expectedErrors is not an integer").At(file, b.line).ForCase(title)
		e.Cause = err
		return tc, e
	}
	tc.ExpectedErrors = n

	if m := inlineConfigPattern.FindStringSubmatch(comment); m != nil {
		tc.Directive = m[1]
	}

	code, ok := d.findCodeBlock(Dedent(b.text))
	if !ok {
		return tc, domain.NewKindError(domain.ErrMissingCodeBlock, "parse", ruleID,
			"block has no fenced source snippet").At(file, b.line).ForCase(title)
	}
	tc.Code = Dedent(code)
	if tc.Directive != "" {
		tc.Code = DirectiveComment(tc.Directive) + "\n" + tc.Code
	}

	return tc, nil
}

// hiddenComment returns the rest of the first line carrying the hidden
// reference-style comment tag.
func hiddenComment(text string) (string, bool) {
	for _, line := range splitLines(text) {
		if i := strings.Index(line, hiddenCommentTag); i >= 0 {
			return line[i+len(hiddenCommentTag):], true
		}
	}
	return "", false
}

// DirectiveComment wraps an inline configuration fragment as an eslint block comment.
func DirectiveComment(directive string) string {
	return "/* eslint " + directive + " */"
}
