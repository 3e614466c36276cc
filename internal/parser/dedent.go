package parser

import "strings"

// tabWidth is the number of spaces a tab expands to before dedenting.
const tabWidth = 2

// Dedent drops leading and trailing blank lines and removes the minimum
// indentation shared by all non-blank lines. Tabs are expanded first.
// Dedent(Dedent(s)) == Dedent(s).
func Dedent(s string) string {
	lines := splitLines(strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth)))

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= minIndent {
			out[i] = line[minIndent:]
		}
	}
	return strings.Join(out, "\n")
}
