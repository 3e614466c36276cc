package template

import (
	"encoding/json"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/bearcnc/lintdoc/internal/ruleset"
)

// CustomFuncMap returns the custom template functions available in templates.
func CustomFuncMap() template.FuncMap {
	return template.FuncMap{
		"quote":       strconv.Quote,
		"ecmaVersion": ecmaVersion,
	}
}

// ruleValue encodes a setting the way ESLint expects it: the bare severity,
// or an array of the severity followed by the options.
func ruleValue(s ruleset.Setting) (string, error) {
	if len(s.Options) == 0 {
		return strconv.Quote(s.Severity.String()), nil
	}
	b, err := json.Marshal(append([]any{s.Severity.String()}, s.Options...))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ecmaVersion renders numeric versions as numbers and "latest" as a string.
func ecmaVersion(v string) string {
	if _, err := strconv.Atoi(v); err == nil {
		return v
	}
	return strconv.Quote(v)
}

// pluginIdent turns a plugin namespace into a JavaScript identifier:
// "@stylistic" -> "stylisticPlugin", "import" -> "importPlugin".
func pluginIdent(namespace string) string {
	var b strings.Builder
	upper := false
	for _, r := range namespace {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String() + "Plugin"
}
