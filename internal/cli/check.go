package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"union-engine/internal/check"
)

var (
	checkDisable []string
	checkTags    []string
	checkTests   bool
)

// ErrFindings is returned when a check run reports errors.
var ErrFindings = errors.New("union check failed")

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Report union misuse in packages",
	Long: `Load the given package patterns (or the configured ones) and report every
union finding. The command fails when any error is reported; warnings only
print.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkDisable, "disable", nil, "Rules to disable in addition to the configured ones")
	checkCmd.Flags().StringSliceVar(&checkTags, "tags", nil, "Build tags to load packages with")
	checkCmd.Flags().BoolVar(&checkTests, "tests", false, "Include test files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.Disable = append(cfg.Disable, checkDisable...)
	cfg.BuildTags = append(cfg.BuildTags, checkTags...)
	cfg.Tests = cfg.Tests || checkTests

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	report, err := check.Run(cfg, args...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range report.Diagnostics.All() {
		PrintDiagnostic(out, d)
	}

	PrintSummary(out, &report.Diagnostics)

	if report.Diagnostics.HasErrors() {
		return fmt.Errorf("%w: %s", ErrFindings, PrintCount(len(report.Diagnostics.Errors), "error", "errors"))
	}

	return nil
}
