package parser

import (
	"regexp"
	"strings"

	"github.com/bearcnc/lintdoc/internal/domain"
)

// state of the line tokenizer. Sections are found with seekingSection and
// inSection; blocks inside one section with seekingBlock and inBlock.
type state int

const (
	seekingSection state = iota
	inSection
	seekingBlock
	inBlock
)

const (
	sectionMarker = "- "
	goodMarker    = "Good:"
	badMarker     = "Bad:"
)

var referenceTagPattern = regexp.MustCompile("eslint: \\[`([^`]+)`\\]")

// block is the raw text between one Good:/Bad: marker and the next.
type block struct {
	isGood bool
	line   int // 1-based line of the marker
	text   string
}

// splitSections cuts content into rule sections. A section starts at a
// top-level bullet line and runs until the next one; only column-0 bullets
// outside fenced code count, nested bullets stay in the current section.
func splitSections(path, content string) []domain.RuleDocSection {
	lines := splitLines(content)

	var (
		sections []domain.RuleDocSection
		buf      []string
		start    int
		fence    fenceTracker
	)
	st := seekingSection

	flush := func() {
		if st == inSection {
			sections = append(sections, domain.RuleDocSection{
				Raw:  strings.Join(buf, "\n"),
				File: path,
				Line: start,
			})
		}
		buf = nil
	}

	for i, line := range lines {
		if !fence.open() && strings.HasPrefix(line, sectionMarker) {
			flush()
			st = inSection
			start = i + 1
		}
		fence.feed(line)
		if st == inSection {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}

// splitBlocks cuts a section into Good:/Bad: blocks, skipping the bullet line.
func splitBlocks(section domain.RuleDocSection) []block {
	lines := splitLines(section.Raw)

	var (
		blocks []block
		cur    block
		buf    []string
		fence  fenceTracker
	)
	st := seekingBlock

	flush := func() {
		if st == inBlock {
			cur.text = strings.Join(buf, "\n")
			blocks = append(blocks, cur)
		}
		buf = nil
	}

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if !fence.open() {
			trimmed := strings.TrimSpace(line)
			isGood := strings.HasPrefix(trimmed, goodMarker)
			if isGood || strings.HasPrefix(trimmed, badMarker) {
				flush()
				st = inBlock
				cur = block{isGood: isGood, line: section.Line + i}
				marker := badMarker
				if isGood {
					marker = goodMarker
				}
				buf = append(buf, strings.TrimPrefix(trimmed, marker))
				continue
			}
		}
		fence.feed(line)
		if st == inBlock {
			buf = append(buf, line)
		}
	}
	flush()

	return blocks
}

// fenceTracker follows fenced code blocks line by line. A fence closes only
// on a run of the opening character at least as long as the opening run,
// with nothing after it.
type fenceTracker struct {
	char byte
	size int // 0 outside a fence
}

func (f *fenceTracker) open() bool {
	return f.size > 0
}

func (f *fenceTracker) feed(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || (trimmed[0] != '`' && trimmed[0] != '~') {
		return
	}
	c := trimmed[0]
	n := len(trimmed) - len(strings.TrimLeft(trimmed, string(c)))
	if n < 3 {
		return
	}
	if !f.open() {
		f.char, f.size = c, n
		return
	}
	if c == f.char && n >= f.size && strings.TrimSpace(trimmed[n:]) == "" {
		f.size = 0
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
