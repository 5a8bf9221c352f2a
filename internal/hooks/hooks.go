package hooks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theblitlabs/devtask/pkg/logger"
)

// Install links the hook script into the local git hooks directory so
// the hook runs on every commit. The caller decides how fatal a failure
// is; an already-installed hook surfaces here as a plain error.
func Install(script, hooksDir, hookName string) error {
	log := logger.Get().With().Str("component", "hooks").Logger()

	src, err := filepath.Abs(script)
	if err != nil {
		return fmt.Errorf("failed to resolve hook script path: %w", err)
	}
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("hook script not found: %w", err)
	}

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	target := filepath.Join(hooksDir, hookName)
	if err := os.Symlink(src, target); err != nil {
		return fmt.Errorf("failed to link hook: %w", err)
	}

	log.Info().Str("hook", target).Msg("Installed pre-commit hook")
	return nil
}
