package cli

import (
	"fmt"
	"os"

	"github.com/theblitlabs/devtask/internal/config"
	"github.com/theblitlabs/devtask/internal/tasks"
)

// ExecuteList prints every described task as a (name, description) line
// on stdout, in declaration order.
func ExecuteList(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg, err := tasks.Build(cfg)
	if err != nil {
		return err
	}

	return tasks.List(os.Stdout, reg)
}
