package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// findCodeBlock returns the content of the first fenced code block in src
// whose language is accepted. src should already be dedented so that nested
// fences are not read as indented code.
func (d *Document) findCodeBlock(src string) (string, bool) {
	content := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	var (
		code  string
		found bool
	)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		node, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := strings.ToLower(string(node.Language(content)))
		if !d.codeLangs[lang] {
			return ast.WalkSkipChildren, nil
		}

		var buf bytes.Buffer
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(content))
		}
		code = buf.String()
		found = true
		return ast.WalkStop, nil
	})

	return code, found
}
