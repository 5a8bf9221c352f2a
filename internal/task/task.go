package task

import (
	"context"
)

// Step is a single unit of work within a task. Steps run sequentially
// and block until they complete.
type Step interface {
	Name() string
	Run(ctx context.Context) error
}

// Task is a named, ordered sequence of steps. The task set is built once
// at startup and is immutable afterwards.
type Task struct {
	Name        string
	Description string
	Steps       []Step
}

type optionalStep struct {
	Step
}

func (s optionalStep) Optional() bool { return true }

// Optional wraps a step so that its failure does not abort the task.
// The wrapping is per-step on purpose: a task with an optional step still
// fails hard when any of its other steps fail.
func Optional(s Step) Step {
	return optionalStep{Step: s}
}

// IsOptional reports whether a step's failure should be tolerated.
func IsOptional(s Step) bool {
	o, ok := s.(interface{ Optional() bool })
	return ok && o.Optional()
}
