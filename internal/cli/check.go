package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bearcnc/lintdoc/internal/config"
	"github.com/bearcnc/lintdoc/internal/harness"
	"github.com/bearcnc/lintdoc/internal/suite"
)

var (
	checkProfiles []string
	checkRules    []string
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).Sprint("PASS")
	failLabel = color.New(color.FgRed, color.Bold).Sprint("FAIL")
	dim       = color.New(color.Faint).SprintFunc()
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the documented examples and compare them with the documentation",
	Long: `Runs every configured profile: each documented rule's Good: and Bad:
examples are linted with the profile's ESLint configuration and the diagnostic
counts are compared with the documented expectations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(checkRules) > 0 {
			overrideRules(cfg, checkRules)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report, runErr := suite.New(cfg, log, nil).RunProfiles(ctx, checkProfiles)
		if report != nil {
			printReport(cmd.OutOrStdout(), report)
		}
		if runErr != nil {
			log.Debugf("Check failures:\n%v", runErr)
			if report != nil && !errors.Is(runErr, context.Canceled) {
				_, failed := report.Totals()
				if failed > 0 {
					return fmt.Errorf("%d rule(s) failed", failed)
				}
			}
			return runErr
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringSliceVarP(&checkProfiles, "profile", "p", nil, "profiles to check (default: all configured)")
	checkCmd.Flags().StringSliceVarP(&checkRules, "rule", "r", nil, "rules to check instead of the configured lists")
	rootCmd.AddCommand(checkCmd)
}

func overrideRules(cfg *config.Config, rules []string) {
	for i := range cfg.Profiles {
		cfg.Profiles[i].Rules = rules
	}
}

func printReport(w io.Writer, report *suite.Report) {
	for _, p := range report.Profiles {
		fmt.Fprintf(w, "%s %s\n", color.New(color.Bold).Sprint(p.Name), dim(p.ConfigFile))
		for _, r := range p.Rules {
			label := passLabel
			if !r.Passed() {
				label = failLabel
			}
			fmt.Fprintf(w, "  %s %s\n", label, r.RuleID)
			if r.Report != nil {
				printCases(w, r.Report)
			}
			if r.Err != nil {
				for _, line := range strings.Split(r.Err.Error(), "\n") {
					fmt.Fprintf(w, "      %s\n", color.RedString(line))
				}
			}
		}
	}

	checked, failed := report.Totals()
	summary := fmt.Sprintf("%d rule(s) checked, %d failed", checked, failed)
	if failed > 0 {
		fmt.Fprintln(w, color.RedString(summary))
		return
	}
	fmt.Fprintln(w, color.GreenString(summary))
}

func printCases(w io.Writer, rr *harness.RuleReport) {
	for _, c := range rr.Cases {
		mark := color.GreenString("ok")
		if !c.Passed() {
			mark = color.RedString("x ")
		}
		fmt.Fprintf(w, "    %s %s %s\n", mark, c.Title, dim(fmt.Sprintf("expected %d, got %d", c.Expected, c.Actual)))
	}
}
