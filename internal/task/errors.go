package task

import (
	"fmt"
	"strings"
)

// UnknownTaskError is returned when a requested task name is not declared.
// No step runs in that case.
type UnknownTaskError struct {
	Name      string
	Available []string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// StepFailedError is returned when a step exits with a failure. ExitCode
// carries the child process exit status so the caller can propagate it.
type StepFailedError struct {
	Task     string
	Step     string
	ExitCode int
	Err      error
}

func (e *StepFailedError) Error() string {
	return fmt.Sprintf("task %q: step %q failed: %v", e.Task, e.Step, e.Err)
}

func (e *StepFailedError) Unwrap() error {
	return e.Err
}
