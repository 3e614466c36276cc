package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Docs: DocsConfig{
			Directories:   []string{"docs"},
			Include:       []string{"**/*.md"},
			Exclude:       []string{"node_modules/**"},
			CodeLanguages: []string{"js", "javascript"},
		},
		Engine: EngineConfig{
			Command:       []string{"npx", "--no-install", "eslint"},
			Timeout:       "30s",
			StdinFilename: "snippet.js",
		},
		Export: ExportConfig{
			Template: "eslint_flat",
		},
		Suite: SuiteConfig{
			Concurrency: 1,
		},
		Profiles: []ProfileConfig{
			{
				Name:               "es6",
				GlobalDirectives:   []string{"no-undef: off"},
				Rules:              []string{"prefer-const", "no-const-assign", "no-var", "no-object-constructor"},
				IgnoreGlobalConfig: []string{"no-undef"},
			},
			{
				Name:               "es5",
				GlobalDirectives:   []string{"no-undef: off"},
				Rules:              []string{"no-object-constructor", "no-array-constructor"},
				IgnoreGlobalConfig: []string{"no-undef"},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
