package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bearcnc/lintdoc/internal/domain"
	"github.com/bearcnc/lintdoc/internal/ruleset"
	"github.com/bearcnc/lintdoc/internal/suite"
)

var (
	exportProfile string
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a built-in profile as an ESLint flat config module",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		rendered, err := suite.New(cfg, log, nil).Export(exportProfile)
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		}
		if err := os.WriteFile(exportOutput, []byte(rendered), 0644); err != nil {
			return domain.NewErrorWithSuggestion("export", exportOutput, 0,
				"failed to write config", "check write permissions for the output path", err)
		}
		log.Infof("Wrote %s profile to %s", exportProfile, exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportProfile, "profile", "p", ruleset.ProfileES6, fmt.Sprintf("built-in profile %v", ruleset.ProfileNames()))
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
