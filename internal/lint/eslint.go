package lint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bearcnc/lintdoc/internal/domain"
)

// DefaultStdinFilename is the virtual file name snippets are linted as.
const DefaultStdinFilename = "snippet.js"

// waitDelay bounds how long output pipes are drained after the process is killed.
const waitDelay = 2 * time.Second

// ESLintOptions configures the ESLint CLI adapter.
type ESLintOptions struct {
	Command       []string // e.g. ["npx", "--no-install", "eslint"]
	ConfigFile    string   // Flat config module passed with --config
	StdinFilename string
	WorkDir       string
	Timeout       time.Duration // Per snippet; 0 disables
	Log           *logrus.Logger
}

// ESLint lints snippets by running the ESLint CLI once per call with
// --stdin and the JSON formatter.
type ESLint struct {
	opts ESLintOptions
}

// eslintMessage and eslintResult mirror ESLint's JSON formatter output.
type eslintMessage struct {
	RuleID   *string `json:"ruleId"`
	Severity int     `json:"severity"`
	Message  string  `json:"message"`
	Line     int     `json:"line"`
	Column   int     `json:"column"`
	Fatal    bool    `json:"fatal"`
}

type eslintResult struct {
	FilePath     string          `json:"filePath"`
	Messages     []eslintMessage `json:"messages"`
	ErrorCount   int             `json:"errorCount"`
	WarningCount int             `json:"warningCount"`
}

// NewESLint creates an ESLint adapter.
func NewESLint(opts ESLintOptions) (*ESLint, error) {
	if len(opts.Command) == 0 {
		return nil, domain.NewErrorWithSuggestion("lint", "", 0,
			"eslint command is empty",
			"set engine.command in lintdoc.yaml, e.g. [npx, --no-install, eslint]", nil)
	}
	if opts.ConfigFile == "" {
		return nil, domain.NewError("lint", "", 0, "eslint config file is empty", nil)
	}
	if opts.StdinFilename == "" {
		opts.StdinFilename = DefaultStdinFilename
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return &ESLint{opts: opts}, nil
}

// Args returns the CLI arguments used for every call.
func (e *ESLint) Args() []string {
	args := append([]string{}, e.opts.Command[1:]...)
	return append(args,
		"--config", e.opts.ConfigFile,
		"--stdin",
		"--stdin-filename", e.opts.StdinFilename,
		"--format", "json",
	)
}

// Lint runs ESLint on source. Exit status 1 only means findings were
// reported; any other failure is returned as an ErrEngine error.
func (e *ESLint) Lint(ctx context.Context, source string) (*domain.LintResult, error) {
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.opts.Command[0], e.Args()...)
	cmd.Dir = e.opts.WorkDir
	cmd.WaitDelay = waitDelay
	cmd.Stdin = strings.NewReader(source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.opts.Log.Debugf("Running: %s %s", e.opts.Command[0], strings.Join(e.Args(), " "))

	runErr := cmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) || exitErr.ExitCode() != 1 {
			return nil, e.engineError("eslint failed", stderr.String(), runErr)
		}
	}

	res, err := DecodeESLintJSON(stdout.Bytes())
	if err != nil {
		return nil, e.engineError("failed to decode eslint output", stderr.String(), err)
	}
	return res, nil
}

func (e *ESLint) engineError(msg, stderr string, cause error) error {
	if s := strings.TrimSpace(stderr); s != "" {
		msg = fmt.Sprintf("%s: %s", msg, s)
	}
	err := domain.NewErrorWithSuggestion("lint", e.opts.ConfigFile, 0, msg,
		"check that eslint and its plugins are installed and the config loads with `eslint --print-config`",
		cause)
	err.Kind = domain.ErrEngine
	return err
}

// DecodeESLintJSON converts the JSON formatter output for a single stdin
// file into a LintResult.
func DecodeESLintJSON(data []byte) (*domain.LintResult, error) {
	var results []eslintResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("expected 1 file result, got %d", len(results))
	}

	r := results[0]
	out := &domain.LintResult{
		ErrorCount:   r.ErrorCount,
		WarningCount: r.WarningCount,
		Diagnostics:  make([]domain.Diagnostic, 0, len(r.Messages)),
	}
	for _, m := range r.Messages {
		d := domain.Diagnostic{
			Severity: m.Severity,
			Message:  m.Message,
			Line:     m.Line,
			Column:   m.Column,
			Fatal:    m.Fatal,
		}
		if m.RuleID != nil {
			d.RuleID = *m.RuleID
		}
		out.Diagnostics = append(out.Diagnostics, d)
	}
	return out, nil
}
