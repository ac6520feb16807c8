package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/agentx-labs/npmbridge/internal/branding"
)

// NpmRuntime executes npm.
type NpmRuntime struct {
	// Bin is the npm executable path.
	Bin string
	// Env is added on top of the current process environment.
	Env map[string]string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes `<Bin> <args...>` with dir as the working directory, streaming
// stdout/stderr to the configured writers while capturing them.
func (n *NpmRuntime) Run(ctx context.Context, dir string, args []string) (*Output, error) {
	if n.Bin == "" {
		return nil, errors.New("npm runtime has no executable configured")
	}

	cmd := exec.CommandContext(ctx, n.Bin, args...)
	cmd.Dir = dir
	cmd.Env = n.buildEnv(dir)

	stdout := n.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := n.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s %s: %w", n.Bin, strings.Join(args, " "), err)
	}

	output.ExitCode = 0
	return output, nil
}

// buildEnv inherits the process environment and adds the configured variables
// plus <PREFIX>_ROOT, the directory npm runs in.
func (n *NpmRuntime) buildEnv(dir string) []string {
	env := os.Environ()
	env = setEnv(env, branding.EnvVar("ROOT"), dir)
	for k, v := range n.Env {
		env = setEnv(env, k, v)
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
