package tasks

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/theblitlabs/devtask/internal/config"
	"github.com/theblitlabs/devtask/internal/format"
	"github.com/theblitlabs/devtask/internal/hooks"
	"github.com/theblitlabs/devtask/internal/runner"
	"github.com/theblitlabs/devtask/internal/task"
	"github.com/theblitlabs/devtask/internal/workspace"
)

// Build assembles the static task set from the configuration. The set is
// fixed for the process lifetime; declaration order here is the order
// tasks appear in listings.
func Build(cfg *config.Config) (*task.Registry, error) {
	reg := task.NewRegistry()

	help := task.Task{
		Name:        "help",
		Description: "Show this list of tasks",
		Steps: []task.Step{
			runner.Func("list-tasks", func(ctx context.Context) error {
				return List(os.Stdout, reg)
			}),
		},
	}

	installArgv := append([]string{}, cfg.Setup.Installer...)
	installArgv = append(installArgv, cfg.Setup.Requirements)
	setup := task.Task{
		Name:        "setup",
		Description: "Install test dependencies and the pre-commit hook",
		Steps: []task.Step{
			runner.Command("install-deps", installArgv...),
			// A failed link (hook already present, no .git directory)
			// must not mask a successful install.
			task.Optional(runner.Func("link-hook", func(ctx context.Context) error {
				return hooks.Install(cfg.Setup.HookScript, cfg.Setup.HooksDir, cfg.Setup.HookName)
			})),
		},
	}

	test := task.Task{
		Name:        "test",
		Description: "Run the unit test suite",
		Steps: []task.Step{
			runner.Command("unit-tests", cfg.Test.Script),
		},
	}

	formatArgv, err := format.Argv(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to build format task: %w", err)
	}
	formatTask := task.Task{
		Name:        "format",
		Description: "Format sources, excluding vendored dependencies",
		Steps: []task.Step{
			runner.Command("run-formatter", formatArgv...),
		},
	}

	clean := task.Task{
		Name:        "clean",
		Description: "Remove generated build artifacts",
		Steps: []task.Step{
			runner.Func("remove-artifacts", func(ctx context.Context) error {
				return workspace.Clean(".", workspace.CleanSpec{
					Paths:        cfg.Clean.Paths,
					DirPatterns:  cfg.Clean.DirPatterns,
					FilePatterns: cfg.Clean.FilePatterns,
				})
			}),
		},
	}

	for _, t := range []task.Task{help, setup, test, formatTask, clean} {
		if err := reg.Register(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// List writes a (name, description) line for every task that declares a
// description, in declaration order.
func List(w io.Writer, reg *task.Registry) error {
	for _, t := range reg.List() {
		if t.Description == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-10s %s\n", t.Name, t.Description); err != nil {
			return err
		}
	}
	return nil
}
