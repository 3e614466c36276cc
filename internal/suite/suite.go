// Package suite runs the harness for every configured profile.
package suite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bearcnc/lintdoc/internal/config"
	"github.com/bearcnc/lintdoc/internal/domain"
	"github.com/bearcnc/lintdoc/internal/harness"
	"github.com/bearcnc/lintdoc/internal/lint"
	"github.com/bearcnc/lintdoc/internal/parser"
	"github.com/bearcnc/lintdoc/internal/ruleset"
	"github.com/bearcnc/lintdoc/internal/scanner"
	tmpl "github.com/bearcnc/lintdoc/internal/template"
)

// ExportedConfigName is the file name of a configuration exported for a run.
const ExportedConfigName = "eslint.config.mjs"

// LinterFactory builds the lint engine bound to one configuration handle.
type LinterFactory func(configFile string) (lint.Linter, error)

// ESLintFactory returns a LinterFactory running the ESLint CLI described by cfg.
func ESLintFactory(cfg *config.Config, log *logrus.Logger) LinterFactory {
	return func(configFile string) (lint.Linter, error) {
		timeout, err := cfg.Engine.TimeoutDuration()
		if err != nil {
			return nil, domain.NewError("config", "", 0, "invalid engine.timeout", err)
		}
		return lint.NewESLint(lint.ESLintOptions{
			Command:       cfg.Engine.Command,
			ConfigFile:    configFile,
			StdinFilename: cfg.Engine.StdinFilename,
			WorkDir:       cfg.Engine.WorkDir,
			Timeout:       timeout,
			Log:           log,
		})
	}
}

// Suite is the top-level orchestrator.
type Suite struct {
	cfg     *config.Config
	log     *logrus.Logger
	factory LinterFactory
	scanner *scanner.FileScanner

	once   sync.Once
	doc    *parser.Document
	docErr error
}

// New creates a Suite. A nil factory runs the ESLint CLI from cfg.Engine.
func New(cfg *config.Config, log *logrus.Logger, factory LinterFactory) *Suite {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if factory == nil {
		factory = ESLintFactory(cfg, log)
	}
	return &Suite{
		cfg:     cfg,
		log:     log,
		factory: factory,
		scanner: scanner.NewScanner(true),
	}
}

// Document resolves and reads the configured rules documents once.
func (s *Suite) Document() (*parser.Document, error) {
	s.once.Do(func() {
		d := s.cfg.Docs
		files, err := s.scanner.Resolve(d.Files, d.Directories, d.Include, d.Exclude)
		if err != nil {
			s.docErr = err
			return
		}
		if len(files) == 0 {
			s.docErr = domain.NewErrorWithSuggestion("scan", "", 0,
				"no rules documents found",
				"check docs.files, docs.directories and docs.include in lintdoc.yaml", nil)
			return
		}
		s.log.Infof("Found %d rules document(s)", len(files))
		s.doc, s.docErr = parser.Load(files, parser.WithCodeLanguages(d.CodeLanguages...))
	})
	return s.doc, s.docErr
}

// Run checks every configured profile in order. Rule failures are recorded in
// the report and returned joined; an engine error or cancellation stops the run.
func (s *Suite) Run(ctx context.Context) (*Report, error) {
	return s.RunProfiles(ctx, nil)
}

// RunProfiles is Run limited to the named profiles. An empty list runs all.
func (s *Suite) RunProfiles(ctx context.Context, names []string) (*Report, error) {
	profiles, err := s.selectProfiles(names)
	if err != nil {
		return nil, err
	}
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	report := &Report{Documents: doc.Files()}
	var failures []error
	for _, p := range profiles {
		pr, err := s.runProfile(ctx, doc, p)
		if pr != nil {
			report.Profiles = append(report.Profiles, pr)
			failures = append(failures, pr.errors()...)
		}
		if err != nil {
			return report, err
		}
	}
	return report, errors.Join(failures...)
}

func (s *Suite) selectProfiles(names []string) ([]config.ProfileConfig, error) {
	if len(names) == 0 {
		return s.cfg.Profiles, nil
	}
	out := make([]config.ProfileConfig, 0, len(names))
	for _, name := range names {
		p, ok := s.cfg.Profile(name)
		if !ok {
			return nil, domain.NewError("config", "", 0, fmt.Sprintf("profile %q is not configured", name), nil)
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Suite) runProfile(ctx context.Context, doc *parser.Document, p config.ProfileConfig) (*ProfileReport, error) {
	log := s.log.WithField("profile", p.Name)

	configFile, cleanup, err := s.configHandle(p)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	linter, err := s.factory(configFile)
	if err != nil {
		return nil, err
	}
	runner, err := harness.New(harness.Options{
		Document:         doc,
		Profile:          p.Name,
		GlobalDirectives: p.GlobalDirectives,
		Verbose:          s.cfg.Suite.Verbose,
		Log:              s.log,
	}, linter)
	if err != nil {
		return nil, err
	}

	rules, err := s.profileRules(p)
	if err != nil {
		return nil, err
	}
	log.Infof("Checking %d rule(s) against %s", len(rules), configFile)

	pr := &ProfileReport{Name: p.Name, ConfigFile: configFile, Rules: make([]RuleResult, len(rules))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.Suite.Concurrency, 1))
	for i, rule := range rules {
		i, rule := i, rule
		g.Go(func() error {
			rr, err := runner.CheckRule(gctx, rule, harness.IgnoreGlobalConfig(p.IgnoresGlobal(rule)))
			pr.Rules[i] = RuleResult{RuleID: rule, Report: rr, Err: err}
			if errors.Is(err, domain.ErrEngine) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return pr, err
	}
	return pr, ctx.Err()
}

// configHandle returns the configuration file for p: its config_file, or the
// built-in profile exported into a temporary directory under the engine work
// dir so plugin imports resolve against the project's node_modules.
func (s *Suite) configHandle(p config.ProfileConfig) (string, func(), error) {
	noop := func() {}
	if p.ConfigFile != "" {
		return p.ConfigFile, noop, nil
	}

	rendered, err := s.Export(p.Name)
	if err != nil {
		return "", noop, err
	}

	base := s.cfg.Engine.WorkDir
	if base == "" {
		base = "."
	}
	dir, err := os.MkdirTemp(base, ".lintdoc-*")
	if err != nil {
		return "", noop, domain.NewError("export", base, 0, "failed to create temporary config directory", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			s.log.Warnf("Failed to remove %s: %v", dir, err)
		}
	}

	path, err := filepath.Abs(filepath.Join(dir, ExportedConfigName))
	if err != nil {
		cleanup()
		return "", noop, domain.NewError("export", dir, 0, "failed to resolve config path", err)
	}
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		cleanup()
		return "", noop, domain.NewError("export", path, 0, "failed to write exported config", err)
	}
	s.log.Debugf("Exported profile %s to %s", p.Name, path)
	return path, cleanup, nil
}

// Export renders the built-in rule set for profile, with the profile's
// configured overrides, using the configured template.
func (s *Suite) Export(profile string) (string, error) {
	rs, err := s.RuleSet(profile)
	if err != nil {
		return "", err
	}
	engine, err := tmpl.NewEngine(s.cfg.Export.TemplateDir, s.cfg.Export.Template)
	if err != nil {
		return "", err
	}
	return engine.Render(rs)
}

// RuleSet returns the built-in rule set for profile with the severity
// overrides of the matching profiles entry applied.
func (s *Suite) RuleSet(profile string) (*ruleset.RuleSet, error) {
	rs, err := ruleset.Profile(profile)
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("export", "", 0,
			"cannot export profile", "set config_file for custom profiles in lintdoc.yaml", err)
	}
	p, ok := s.cfg.Profile(profile)
	if !ok {
		return rs, nil
	}
	severities, err := p.Severities()
	if err != nil {
		return nil, domain.NewError("config", "", 0, fmt.Sprintf("profile %q", profile), err)
	}
	return rs.Override("lintdoc/overrides", severities), nil
}

// profileRules returns the profile's rule list, or every enabled rule of the
// built-in profile when the list is empty.
func (s *Suite) profileRules(p config.ProfileConfig) ([]string, error) {
	if len(p.Rules) > 0 {
		return p.Rules, nil
	}
	rs, err := s.RuleSet(p.Name)
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("config", "", 0,
			fmt.Sprintf("profile %q has no rules list", p.Name),
			"list the rules to check under profiles[].rules", err)
	}
	return rs.Enabled(), nil
}
