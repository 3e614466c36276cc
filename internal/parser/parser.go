// Package parser extracts per-rule test cases from a markdown rules document.
package parser

import (
	"os"
	"strings"

	"github.com/bearcnc/lintdoc/internal/domain"
)

// DefaultCodeLanguages are the fence languages treated as lintable source.
var DefaultCodeLanguages = []string{"js", "javascript"}

// Document is one or more rules documents held in memory. Sections and test
// cases are recomputed from the raw text on every lookup.
type Document struct {
	files     []sourceFile
	codeLangs map[string]bool
}

type sourceFile struct {
	path    string
	content string
}

// Option configures a Document.
type Option func(*Document)

// WithCodeLanguages overrides the fence languages accepted as snippets.
func WithCodeLanguages(langs ...string) Option {
	return func(d *Document) {
		if len(langs) == 0 {
			return
		}
		d.codeLangs = make(map[string]bool, len(langs))
		for _, l := range langs {
			d.codeLangs[strings.ToLower(l)] = true
		}
	}
}

// Load reads the given documents once. The files are searched in the order given.
func Load(paths []string, opts ...Option) (*Document, error) {
	if len(paths) == 0 {
		return nil, domain.NewErrorWithSuggestion("parse", "", 0,
			"no rules document given",
			"set docs in lintdoc.yaml or pass --docs", nil)
	}
	d := newDocument(opts)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, domain.NewError("parse", p, 0, "failed to read rules document", err)
		}
		d.files = append(d.files, sourceFile{path: p, content: string(data)})
	}
	return d, nil
}

// NewDocument builds a Document from in-memory content.
func NewDocument(name string, content []byte, opts ...Option) *Document {
	d := newDocument(opts)
	d.files = append(d.files, sourceFile{path: name, content: string(content)})
	return d
}

func newDocument(opts []Option) *Document {
	d := &Document{}
	WithCodeLanguages(DefaultCodeLanguages...)(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Files returns the paths of the loaded documents.
func (d *Document) Files() []string {
	paths := make([]string, 0, len(d.files))
	for _, f := range d.files {
		paths = append(paths, f.path)
	}
	return paths
}

// Sections returns every section whose bullet line carries the reference tag
// for ruleID, across all loaded files.
func (d *Document) Sections(ruleID string) []domain.RuleDocSection {
	tag := referenceTag(ruleID)
	var matches []domain.RuleDocSection
	for _, f := range d.files {
		for _, s := range splitSections(f.path, f.content) {
			if strings.Contains(firstLine(s.Raw), tag) {
				s.RuleID = ruleID
				matches = append(matches, s)
			}
		}
	}
	return matches
}

// RuleIDs lists the rule id tagged on each section, in document order.
// Duplicates are kept so callers can detect them.
func (d *Document) RuleIDs() []string {
	var ids []string
	for _, f := range d.files {
		for _, s := range splitSections(f.path, f.content) {
			if m := referenceTagPattern.FindStringSubmatch(firstLine(s.Raw)); m != nil {
				ids = append(ids, m[1])
			}
		}
	}
	return ids
}

func referenceTag(ruleID string) string {
	return "eslint: [`" + ruleID + "`]"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
