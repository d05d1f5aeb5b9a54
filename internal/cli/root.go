// Package cli implements the unioncheck command tree.
package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"union-engine/internal/config"
)

var (
	// Global flags
	configPath string
	noColor    bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "unioncheck",
	Version: "dev",
	Short:   "Static checks for union-engine unions",
	Long: `unioncheck loads Go packages and reports union misuse that the compiler
accepts but the union runtime rejects: requested types that are not
alternatives, duplicate or gapped alternative lists, and non-trivial
alternatives in trivial unions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

// SetVersion overrides the version printed by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}

	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		fmt.Sprintf("Configuration file (default %s when present)", config.DefaultFile))
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Dump the effective configuration")

	rootCmd.AddCommand(checkCmd, layoutCmd, initCmd, &cobra.Command{
		Use:   "version",
		Short: "Print the unioncheck version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	})
}

// loadConfig reads --config, or the default file when it exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	if debug {
		spew.Fdump(cmd.ErrOrStderr(), cfg)
	}

	return cfg, nil
}
