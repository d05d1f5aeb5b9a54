package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"union-engine/internal/config"
)

// execute runs the command tree with fresh flag values and returns what it
// printed to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}

		f.Changed = false
	}

	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)

	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "unioncheck")
	assert.Contains(t, out, "check")
	assert.Contains(t, out, "layout")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { rootCmd.Version = "dev" })

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	SetVersion("")
	assert.Equal(t, "1.2.3", rootCmd.Version)
}

func TestCheckCommand_Findings(t *testing.T) {
	out, _, err := execute(t, "check", "union-engine/examples/misuse")
	require.ErrorIs(t, err, ErrFindings)
	assert.EqualError(t, err, "union check failed: 6 errors")

	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "[UC001] Has[Temperature]: Temperature is not an alternative (did you mean int (convertible, use SetConverted)?)")
	assert.Contains(t, out, "warning: ")
	assert.Contains(t, out, "[UC005]")
	assert.Contains(t, out, "6 errors, 1 warning\n")
}

func TestCheckCommand_Disable(t *testing.T) {
	out, _, err := execute(t, "check", "--disable", "membership,duplicate,gap,trivial,strategy",
		"union-engine/examples/misuse")
	require.NoError(t, err)
	assert.Contains(t, out, "no union findings")
}

func TestCheckCommand_Clean(t *testing.T) {
	out, _, err := execute(t, "check", "union-engine/examples/shapes")
	require.NoError(t, err)
	assert.Equal(t, "✓ no union findings\n", out)
}

func TestCheckCommand_UnknownRule(t *testing.T) {
	_, _, err := execute(t, "check", "--disable", "bogus", "union-engine/examples/shapes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule "bogus"`)
}

func TestLayoutCommand(t *testing.T) {
	out, _, err := execute(t, "layout", "union-engine/examples/shapes")
	require.NoError(t, err)

	assert.Contains(t, out, "Type")
	assert.Contains(t, out, "Strategy")
	assert.Regexp(t, `pod\.Union\[Circle, Rect\]\s+trivial\s+16\s+8`, out)
	assert.Regexp(t, `union\.Union\[Circle, Rect, Polygon\]\s+managed\s+24\s+8`, out)
}

func TestInitCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+config.DefaultFile)

	cfg, err := config.LoadFile(config.DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "init", "--force")
	require.NoError(t, err)
}

func TestInitCommand_ConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, _, err := execute(t, "init", "--config", path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestDebugFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unioncheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\nmax_suggestions: 2\n"), 0o644))

	_, stderr, err := execute(t, "check", "--config", path, "--debug", "union-engine/examples/shapes")
	require.NoError(t, err)
	assert.Contains(t, stderr, "MaxSuggestions: (int) 2")
}

func TestPrintTable(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintTable(&buf, []string{"Name", "Size"}, [][]string{{"a", "16"}, {"longer", "8"}})

	assert.Equal(t, "  Name    Size\n  ------  ----\n  a       16\n  longer  8\n", buf.String())

	buf.Reset()
	PrintTable(&buf, []string{"Name"}, nil)
	assert.Empty(t, buf.String())
}

func TestPrintCount(t *testing.T) {
	assert.Equal(t, "1 error", PrintCount(1, "error", "errors"))
	assert.Equal(t, "0 errors", PrintCount(0, "error", "errors"))
}
