package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bearcnc/lintdoc/internal/ruleset"
	"github.com/bearcnc/lintdoc/internal/suite"
)

var (
	coverageProfile string
	coverageStrict  bool
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report which enabled rules the documents cover",
	Long: `Lists the enabled rules of a built-in profile that have no section in the
rules documents, the rules documented more than once, and documented rules
the profile does not configure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		report, err := suite.New(cfg, log, nil).Coverage(coverageProfile)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		missing := report.Missing()
		dups := report.Duplicated()
		documented := len(report.Rules) - len(missing)
		fmt.Fprintf(w, "%s: %d of %d enabled rule(s) documented\n", report.Profile, documented, len(report.Rules))

		for _, id := range missing {
			fmt.Fprintf(w, "  %s %s\n", color.YellowString("missing"), id)
		}
		for _, d := range dups {
			fmt.Fprintf(w, "  %s %s %v\n", color.RedString("duplicate"), d.RuleID, d.Locations)
		}
		for _, id := range report.Unknown {
			fmt.Fprintf(w, "  %s %s\n", color.CyanString("unknown"), id)
		}

		if len(dups) > 0 {
			return fmt.Errorf("%d rule(s) documented more than once", len(dups))
		}
		if coverageStrict && (len(missing) > 0 || len(report.Unknown) > 0) {
			return fmt.Errorf("%d undocumented and %d unknown rule(s)", len(missing), len(report.Unknown))
		}
		return nil
	},
}

func init() {
	coverageCmd.Flags().StringVarP(&coverageProfile, "profile", "p", ruleset.ProfileES6, "built-in profile")
	coverageCmd.Flags().BoolVar(&coverageStrict, "strict", false, "fail on undocumented or unknown rules")
	rootCmd.AddCommand(coverageCmd)
}
