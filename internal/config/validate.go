package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bearcnc/lintdoc/internal/domain"
	"github.com/bearcnc/lintdoc/internal/ruleset"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Docs validation
	if len(cfg.Docs.Files) == 0 && len(cfg.Docs.Directories) == 0 {
		errs = append(errs, "docs.files or docs.directories must not be empty")
	}
	if len(cfg.Docs.Directories) > 0 && len(cfg.Docs.Include) == 0 {
		errs = append(errs, "docs.include must not be empty when docs.directories is set")
	}
	for _, pattern := range append(append([]string{}, cfg.Docs.Include...), cfg.Docs.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Sprintf("docs pattern %q is not a valid glob", pattern))
		}
	}

	// Engine validation
	if len(cfg.Engine.Command) == 0 {
		errs = append(errs, "engine.command must not be empty")
	}
	if d, err := cfg.Engine.TimeoutDuration(); err != nil {
		errs = append(errs, fmt.Sprintf("engine.timeout is not a valid duration: %v", err))
	} else if d < 0 {
		errs = append(errs, "engine.timeout must not be negative")
	}

	if cfg.Suite.Concurrency < 1 {
		errs = append(errs, fmt.Sprintf("suite.concurrency must be at least 1 (got %d)", cfg.Suite.Concurrency))
	}

	// Profiles validation
	if len(cfg.Profiles) == 0 {
		errs = append(errs, "profiles must not be empty")
	}
	seen := make(map[string]bool)
	for i, p := range cfg.Profiles {
		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("profiles[%d].name must not be empty", i))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Sprintf("profiles[%d].name %q is duplicated", i, p.Name))
		}
		seen[p.Name] = true
		if _, err := ruleset.Profile(p.Name); err != nil {
			if p.ConfigFile == "" {
				errs = append(errs, fmt.Sprintf("profiles[%d]: %v; set config_file for custom profiles", i, err))
			}
			if len(p.Rules) == 0 {
				errs = append(errs, fmt.Sprintf("profiles[%d].rules must not be empty for custom profile %q", i, p.Name))
			}
		}
		if _, err := p.Severities(); err != nil {
			errs = append(errs, fmt.Sprintf("profiles[%d].%v", i, err))
		}
		if len(p.Overrides) > 0 && p.ConfigFile != "" {
			errs = append(errs, fmt.Sprintf("profiles[%d].overrides only apply to exported profiles; remove config_file or edit it directly", i))
		}
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
