package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theblitlabs/devtask/cmd/cli"
	"github.com/theblitlabs/devtask/internal/task"
	"github.com/theblitlabs/devtask/pkg/logger"
)

var (
	logMode    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "devtask",
	Short: "Developer workflow task runner",
	Long:  `Named shortcuts for the project's development chores: dependency setup, unit tests, formatting and artifact cleanup`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch logMode {
		case "debug", "pretty", "prod", "test":
			logger.InitWithMode(logger.Mode(logMode))
		default:
			logger.InitWithMode(logger.ModePretty)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ExecuteList(configPath)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ExecuteList(configPath)
	},
}

var runCmd = &cobra.Command{
	Use:   "run [task]",
	Short: "Run a task by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ExecuteRun(cmd.Context(), configPath, args[0])
	},
}

// taskCmd is a direct shortcut for one declared task.
func taskCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.ExecuteRun(cmd.Context(), configPath, name)
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logMode, "log", "pretty", "Log mode: debug, pretty, prod, test")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default devtask.yaml, if present)")
}

func main() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(taskCmd("setup", "Install test dependencies and the pre-commit hook"))
	rootCmd.AddCommand(taskCmd("test", "Run the unit test suite"))
	rootCmd.AddCommand(taskCmd("format", "Format sources, excluding vendored dependencies"))
	rootCmd.AddCommand(taskCmd("clean", "Remove generated build artifacts"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var stepErr *task.StepFailedError
		if errors.As(err, &stepErr) && stepErr.ExitCode != 0 {
			os.Exit(stepErr.ExitCode)
		}
		os.Exit(1)
	}
}
