package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bearcnc/lintdoc/internal/domain"
	"github.com/bearcnc/lintdoc/internal/ruleset"
)

// Config is the top-level configuration struct.
type Config struct {
	Docs     DocsConfig      `yaml:"docs"`
	Engine   EngineConfig    `yaml:"engine"`
	Export   ExportConfig    `yaml:"export"`
	Suite    SuiteConfig     `yaml:"suite"`
	Profiles []ProfileConfig `yaml:"profiles"`
	Logging  LoggingConfig   `yaml:"logging"`
}

type DocsConfig struct {
	Files         []string `yaml:"files"`
	Directories   []string `yaml:"directories"`
	Include       []string `yaml:"include"`
	Exclude       []string `yaml:"exclude"`
	CodeLanguages []string `yaml:"code_languages"`
}

type EngineConfig struct {
	Command       []string `yaml:"command"`
	WorkDir       string   `yaml:"work_dir"`
	Timeout       string   `yaml:"timeout"`
	StdinFilename string   `yaml:"stdin_filename"`
}

// TimeoutDuration parses Timeout; an empty value means no timeout.
func (e EngineConfig) TimeoutDuration() (time.Duration, error) {
	if e.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(e.Timeout)
}

type ExportConfig struct {
	TemplateDir string `yaml:"template_dir"`
	Template    string `yaml:"template"`
}

type SuiteConfig struct {
	Concurrency int  `yaml:"concurrency"`
	Verbose     bool `yaml:"verbose"`
}

// ProfileConfig is one harness instance: a configuration handle checked
// against the rules documents under a profile label.
type ProfileConfig struct {
	Name               string            `yaml:"name"`
	ConfigFile         string            `yaml:"config_file"` // empty: export the built-in profile
	GlobalDirectives   []string          `yaml:"global_directives"`
	Rules              []string          `yaml:"rules"` // empty: every enabled rule of the profile
	IgnoreGlobalConfig []string          `yaml:"ignore_global_config"`
	Overrides          map[string]string `yaml:"overrides"` // rule id -> severity, built-in profiles only
}

// IgnoresGlobal reports whether cases of rule skip the global directives.
func (p ProfileConfig) IgnoresGlobal(rule string) bool {
	for _, r := range p.IgnoreGlobalConfig {
		if r == rule {
			return true
		}
	}
	return false
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Severities parses Overrides.
func (p ProfileConfig) Severities() (map[string]ruleset.Severity, error) {
	out := make(map[string]ruleset.Severity, len(p.Overrides))
	for id, v := range p.Overrides {
		sev, err := ruleset.ParseSeverity(v)
		if err != nil {
			return nil, fmt.Errorf("overrides.%s: %w", id, err)
		}
		out[id] = sev
	}
	return out, nil
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	// Explicit files replace the default directory instead of adding to it.
	var docs struct {
		Docs DocsConfig `yaml:"docs"`
	}
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}
	if len(docs.Docs.Files) > 0 && len(docs.Docs.Directories) == 0 {
		cfg.Docs.Directories = nil
	}

	return cfg, nil
}

// Profile returns the profile entry with the given name.
func (c *Config) Profile(name string) (ProfileConfig, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return ProfileConfig{}, false
}
