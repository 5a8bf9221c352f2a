package runner

import (
	"context"
	"errors"
	"os/exec"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theblitlabs/devtask/internal/task"
	"github.com/theblitlabs/devtask/pkg/logger"
)

// Runner executes one task at a time: each step runs as a blocking,
// sequential unit and the first fatal failure aborts the rest.
type Runner struct {
	log zerolog.Logger
}

func New() *Runner {
	return &Runner{
		log: logger.Get().With().
			Str("component", "runner").
			Str("run_id", uuid.NewString()).
			Logger(),
	}
}

// Run executes the task's steps in declaration order. A failing step
// marked optional is logged and skipped; any other failure stops the
// task and surfaces as a StepFailedError carrying the exit code.
func (r *Runner) Run(ctx context.Context, t task.Task) error {
	log := r.log.With().Str("task", t.Name).Logger()

	for _, step := range t.Steps {
		log.Debug().Str("step", step.Name()).Msg("Running step")

		err := step.Run(ctx)
		if err == nil {
			continue
		}

		if task.IsOptional(step) {
			log.Warn().Err(err).Str("step", step.Name()).Msg("Optional step failed, continuing")
			continue
		}

		return &task.StepFailedError{
			Task:     t.Name,
			Step:     step.Name(),
			ExitCode: exitCode(err),
			Err:      err,
		}
	}

	log.Debug().Msg("Task completed")
	return nil
}

// exitCode maps a step error to the exit status to propagate. Child
// process failures keep their own code; anything else becomes 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
