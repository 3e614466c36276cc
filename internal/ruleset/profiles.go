package ruleset

import (
	"fmt"
	"sort"
)

type obj = map[string]any

var (
	stylistic = Plugin{Namespace: "@stylistic", Package: "@stylistic/eslint-plugin"}
	importPkg = Plugin{Namespace: "import", Package: "eslint-plugin-import"}
)

// PreES6 are the rule groups that apply to any JavaScript.
var PreES6 = []Group{
	{
		Name: "pre-es6/arrays",
		Rules: []Rule{
			R("no-array-constructor", Error),
			R("array-callback-return", Error, obj{"allowImplicit": true}),
		},
	},
	{
		Name:    "pre-es6/blocks",
		Plugins: []Plugin{stylistic},
		Rules: []Rule{
			R("@stylistic/brace-style", Error, "1tbs", obj{"allowSingleLine": true}),
			R("no-else-return", Error, obj{"allowElseIf": false}),
			R("@stylistic/nonblock-statement-body-position", Error, "beside"),
		},
	},
	{
		Name:    "pre-es6/comments",
		Plugins: []Plugin{stylistic},
		Rules: []Rule{
			R("@stylistic/spaced-comment", Error, "always", obj{
				"line": obj{
					"exceptions": []string{"-", "+"},
					"markers":    []string{"=", "!", "/"},
				},
				"block": obj{
					"exceptions": []string{"-", "+"},
					"markers":    []string{"=", "!", ":", "::"},
					"balanced":   true,
				},
			}),
		},
	},
	{
		Name: "pre-es6/comparisons",
		Rules: []Rule{
			R("no-case-declarations", Error),
			R("eqeqeq", Error, "always", obj{"null": "ignore"}),
		},
	},
	{
		Name:    "pre-es6/functions",
		Plugins: []Plugin{stylistic},
		Rules: []Rule{
			R("func-style", Off, "expression"),
			R("func-names", Warn),
			R("@stylistic/wrap-iife", Error, "outside", obj{"functionPrototypeMethods": false}),
			R("no-inner-declarations", Error, "functions", obj{"blockScopedFunctions": "allow"}),
		},
	},
	{
		Name: "pre-es6/hoisting",
		Rules: []Rule{
			R("no-use-before-define", Error, obj{"functions": true, "classes": true, "variables": true}),
		},
	},
	{
		Name: "pre-es6/iterators-generators",
		Rules: []Rule{
			R("no-restricted-syntax", Error,
				obj{"selector": "ForInStatement", "message": "Avoid using `for...in`. use Object.keys/values/entries instead."},
				obj{"selector": "ForOfStatement", "message": "Avoid using `for...of`. use array methods instead."},
				obj{"selector": "LabeledStatement", "message": "Avoid using labels. they make code hard to follow."},
				obj{"selector": "WithStatement", "message": "`with` is not allowed in strict mode."},
			),
		},
	},
	{
		Name: "pre-es6/objects",
		Rules: []Rule{
			R("no-object-constructor", Error),
		},
	},
	{
		Name: "pre-es6/properties",
		Rules: []Rule{
			R("dot-notation", Error, obj{"allowKeywords": true}),
		},
	},
	{
		Name:    "pre-es6/strings",
		Plugins: []Plugin{stylistic},
		Rules: []Rule{
			R("@stylistic/quotes", Error, "single", obj{"avoidEscape": true}),
		},
	},
	{
		Name: "pre-es6/variables",
		Rules: []Rule{
			R("no-undef", Error),
		},
	},
}

// PostES6 are the rule groups that need ES2015 or later syntax.
var PostES6 = []Group{
	{
		Name:    "post-es6/arrow-functions",
		Plugins: []Plugin{stylistic},
		Rules: []Rule{
			R("@stylistic/arrow-spacing", Error, obj{"before": true, "after": true}),
			R("prefer-arrow-callback", Error, obj{"allowNamedFunctions": false, "allowUnboundThis": true}),
		},
	},
	{
		Name: "post-es6/classes",
		Rules: []Rule{
			R("class-methods-use-this", Error),
			R("no-dupe-class-members", Error),
			R("no-useless-constructor", Error),
		},
	},
	{
		Name: "post-es6/destructuring",
		Rules: []Rule{
			R("prefer-destructuring", Error,
				obj{
					"VariableDeclarator":   obj{"array": false, "object": true},
					"AssignmentExpression": obj{"array": true, "object": false},
				},
				obj{"enforceForRenamedProperties": false},
			),
		},
	},
	{
		Name: "post-es6/functions",
		Rules: []Rule{
			R("default-param-last", Error),
			R("prefer-rest-params", Error),
			R("prefer-spread", Error),
		},
	},
	{
		Name:    "post-es6/iterators-generators",
		Plugins: []Plugin{stylistic},
		Rules: []Rule{
			R("@stylistic/generator-star-spacing", Error, obj{"before": false, "after": true}),
		},
	},
	{
		Name:    "post-es6/modules",
		Plugins: []Plugin{importPkg},
		Rules: []Rule{
			R("import/no-amd", Error),
			R("import/no-import-module-exports", Error),
		},
	},
	{
		Name: "post-es6/objects",
		Rules: []Rule{
			R("object-shorthand", Error, "always", obj{"ignoreConstructors": false, "avoidQuotes": true}),
		},
	},
	{
		Name: "post-es6/properties",
		Rules: []Rule{
			R("prefer-exponentiation-operator", Error),
		},
	},
	{
		Name: "post-es6/references",
		Rules: []Rule{
			R("no-const-assign", Error),
			R("no-var", Error),
			R("prefer-const", Error, obj{"destructuring": "any", "ignoreReadBeforeAssign": true}),
		},
	},
	{
		Name:    "post-es6/strings",
		Plugins: []Plugin{stylistic},
		Rules: []Rule{
			R("prefer-template", Error),
			R("@stylistic/template-curly-spacing", Error),
		},
	},
}

// Profile labels.
const (
	ProfileES5 = "es5"
	ProfileES6 = "es6"
)

var profiles = map[string]func() *RuleSet{
	// Legacy: pre-ES6 rules parsed as ES5.
	ProfileES5: func() *RuleSet {
		return Compose(ProfileES5, PreES6...).Extend(ProfileES5, Group{
			Name:            "legacy",
			LanguageOptions: &LanguageOptions{EcmaVersion: "5"},
			Rules:           []Rule{R("no-var", Off)},
		})
	},
	ProfileES6: func() *RuleSet {
		return Compose(ProfileES6, PreES6...).Extend(ProfileES6, PostES6...).Extend(ProfileES6, Group{
			Name:            "base",
			LanguageOptions: &LanguageOptions{EcmaVersion: "latest", SourceType: "module"},
		})
	},
}

// Profile returns a fresh RuleSet for a profile label.
func Profile(name string) (*RuleSet, error) {
	build, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (available: %v)", name, ProfileNames())
	}
	return build(), nil
}

// ProfileNames returns the known profile labels, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
