package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theblitlabs/devtask/cmd/cli"
	"github.com/theblitlabs/devtask/internal/task"
	"github.com/theblitlabs/devtask/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitWithMode(logger.ModeTest)
	m.Run()
}

// chdirTemp moves the test into a fresh directory, the way a developer
// would run devtask from a project root.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Logf("Failed to change back to original directory: %v", err)
		}
	})
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "devtask.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecuteRunUnknownTask(t *testing.T) {
	chdirTemp(t)

	err := cli.ExecuteRun(context.Background(), "", "deploy")
	require.Error(t, err)

	var unknownErr *task.UnknownTaskError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "deploy", unknownErr.Name)
	assert.Contains(t, err.Error(), "help, setup, test, format, clean")
}

func TestExecuteRunClean(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "build"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.pyc"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.py"), []byte("x"), 0o644))

	require.NoError(t, cli.ExecuteRun(context.Background(), "", "clean"))

	_, err := os.Stat(filepath.Join(dir, "build"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "stale.pyc"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "keep.py"))
	assert.NoError(t, err)
}

func TestExecuteRunSetup(t *testing.T) {
	t.Run("installer failure aborts before hook link", func(t *testing.T) {
		dir := chdirTemp(t)
		configPath := writeConfig(t, dir, `setup:
  installer: ["sh", "-c", "exit 7"]
`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-commit.sh"), []byte("#!/bin/sh\n"), 0o755))

		err := cli.ExecuteRun(context.Background(), configPath, "setup")
		require.Error(t, err)

		var stepErr *task.StepFailedError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, "install-deps", stepErr.Step)
		assert.Equal(t, 7, stepErr.ExitCode)

		// The hook-link step never ran.
		_, err = os.Lstat(filepath.Join(dir, ".git", "hooks", "pre-commit"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("hook link failure is non-fatal", func(t *testing.T) {
		dir := chdirTemp(t)
		configPath := writeConfig(t, dir, `setup:
  installer: ["true"]
`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-commit.sh"), []byte("#!/bin/sh\n"), 0o755))

		// An already-installed hook makes the symlink fail.
		hooksDir := filepath.Join(dir, ".git", "hooks")
		require.NoError(t, os.MkdirAll(hooksDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte("#!/bin/sh\n"), 0o755))

		assert.NoError(t, cli.ExecuteRun(context.Background(), configPath, "setup"))
	})

	t.Run("hook is linked on a clean checkout", func(t *testing.T) {
		dir := chdirTemp(t)
		configPath := writeConfig(t, dir, `setup:
  installer: ["true"]
`)
		script := filepath.Join(dir, "pre-commit.sh")
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))

		require.NoError(t, cli.ExecuteRun(context.Background(), configPath, "setup"))

		target, err := os.Readlink(filepath.Join(dir, ".git", "hooks", "pre-commit"))
		require.NoError(t, err)
		assert.Equal(t, script, target)
	})
}

func TestExecuteRunTestPropagatesExitCode(t *testing.T) {
	dir := chdirTemp(t)
	script := filepath.Join(dir, "run-unit-tests.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 2\n"), 0o755))

	err := cli.ExecuteRun(context.Background(), "", "test")
	require.Error(t, err)

	var stepErr *task.StepFailedError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 2, stepErr.ExitCode)
}
