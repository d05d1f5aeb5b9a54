package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"union-engine/internal/check"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [packages]",
	Short: "List union types with their strategy and storage layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		report, err := check.Run(cfg, args...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(report.Unions) == 0 {
			_, _ = valueColor.Fprintln(out, "  no unions found")
			return nil
		}

		rows := make([][]string, 0, len(report.Unions))
		for _, u := range report.Unions {
			rows = append(rows, []string{
				u.Type,
				u.Strategy.Name(),
				strconv.FormatUint(uint64(u.Layout.Size), 10),
				strconv.FormatUint(uint64(u.Layout.Align), 10),
				strconv.Itoa(u.Uses),
				u.Position,
			})
		}

		PrintTable(out, []string{"Type", "Strategy", "Size", "Align", "Uses", "Position"}, rows)

		return nil
	},
}
