package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bjpop/cicheck/internal/errors"
)

// executeCommand runs the root command with the given arguments and returns
// the captured output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

// isolateUserConfig points config lookups at empty temp dirs so command
// tests never see the developer's real config.
func isolateUserConfig(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("HOME", filepath.Join(tmp, "home"))
	chdir(t, tmp)
}

// chdir changes into dir for the duration of the test, restoring the previous
// working directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestUnexpectedArgumentExitsInvalidArguments(t *testing.T) {
	_, err := executeCommand(t, "run", "unexpected-positional")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	require.Equal(t, errors.Argument, cliErr.Category)
	require.Contains(t, cliErr.Message, "unexpected-positional")
	require.Equal(t, ExitInvalidArguments, ExitCodeFor(err))
}

func TestUnknownFlagExitsInvalidArguments(t *testing.T) {
	_, err := executeCommand(t, "run", "--definitely-not-a-flag")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	require.Equal(t, errors.Argument, cliErr.Category)
	require.Equal(t, ExitInvalidArguments, ExitCodeFor(err))
}

func TestWatchMissingPackageDirExitsMissingTool(t *testing.T) {
	isolateUserConfig(t)

	missing := filepath.Join(t.TempDir(), "no-such-package")
	_, err := executeCommand(t, "watch", "--package-dir", missing)
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	require.Equal(t, errors.Prerequisite, cliErr.Category)
	require.Contains(t, cliErr.Message, missing)
	require.Equal(t, ExitMissingTool, ExitCodeFor(err))
}

func TestConfigShowReportsValueSources(t *testing.T) {
	isolateUserConfig(t)

	require.NoError(t, os.Mkdir(".cicheck", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(".cicheck", "config.yml"),
		[]byte("package_dir: mypkg\n"), 0o644))
	t.Setenv("CICHECK_LINT_COMMAND", "ruff")

	out, err := executeCommand(t, "config", "show")
	require.NoError(t, err)

	require.Contains(t, out, "package_dir: mypkg # project")
	require.Contains(t, out, "lint_command: ruff # env")
	require.Contains(t, out, "test_command: python # default")
}

func TestVersionCommandMarksDevBuilds(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	require.Contains(t, out, "cicheck dev (development build)")
	require.Contains(t, out, "commit: unknown")
}
