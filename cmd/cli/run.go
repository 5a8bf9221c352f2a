package cli

import (
	"context"
	"fmt"

	"github.com/theblitlabs/devtask/internal/config"
	"github.com/theblitlabs/devtask/internal/runner"
	"github.com/theblitlabs/devtask/internal/tasks"
	"github.com/theblitlabs/devtask/pkg/logger"
)

// ExecuteRun looks up a task by name and runs its steps in order. The
// task set is built fresh from configuration on every invocation; each
// invocation is one-shot and stateless.
func ExecuteRun(ctx context.Context, configPath, name string) error {
	log := logger.Get().With().Str("component", "cli").Logger()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg, err := tasks.Build(cfg)
	if err != nil {
		return err
	}

	t, err := reg.Get(name)
	if err != nil {
		return err
	}

	log.Debug().Str("task", name).Msg("Starting task")
	return runner.New().Run(ctx, t)
}
