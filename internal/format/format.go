package format

import (
	"errors"

	"github.com/theblitlabs/devtask/internal/config"
)

// Argv builds the formatter invocation for the whole tree. Vendored
// dependencies stay untouched via the exclude pattern.
func Argv(cfg config.FormatConfig) ([]string, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("formatter command is not configured")
	}

	argv := make([]string, 0, len(cfg.Command)+3)
	argv = append(argv, cfg.Command...)
	if cfg.Exclude != "" {
		argv = append(argv, "--exclude", cfg.Exclude)
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	argv = append(argv, root)

	return argv, nil
}
