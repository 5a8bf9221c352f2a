package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// commandStep invokes one external process. The child inherits the
// caller's working directory, environment, and standard streams, so the
// tool's own output is the diagnostic.
type commandStep struct {
	name string
	argv []string
}

// Command builds a step that runs argv[0] with the remaining arguments.
func Command(name string, argv ...string) *commandStep {
	return &commandStep{name: name, argv: argv}
}

func (s *commandStep) Name() string { return s.name }

// Argv exposes the exact invocation, mostly for listings and tests.
func (s *commandStep) Argv() []string {
	argv := make([]string, len(s.argv))
	copy(argv, s.argv)
	return argv
}

func (s *commandStep) Run(ctx context.Context) error {
	if len(s.argv) == 0 {
		return errors.New("empty command")
	}
	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// funcStep runs work in-process, e.g. filesystem cleanup that would be a
// shell one-liner in a Makefile.
type funcStep struct {
	name string
	fn   func(ctx context.Context) error
}

// Func builds a step from a plain function.
func Func(name string, fn func(ctx context.Context) error) *funcStep {
	return &funcStep{name: name, fn: fn}
}

func (s *funcStep) Name() string { return s.name }

func (s *funcStep) Run(ctx context.Context) error {
	return s.fn(ctx)
}
