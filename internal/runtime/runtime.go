package runtime

import (
	"context"
	"fmt"
)

// Runner executes the package manager with args in dir.
type Runner interface {
	// Run returns the captured output. A nonzero exit status is reported in
	// Output.ExitCode, not as an error.
	Run(ctx context.Context, dir string, args []string) (*Output, error)
}

// Output captures the result of a package manager invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError reports a nonzero exit status from the package manager.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// Check converts a nonzero exit status into an *ExitError.
func (o *Output) Check(command string) error {
	if o.ExitCode != 0 {
		return &ExitError{Command: command, Code: o.ExitCode}
	}
	return nil
}
