// Package process runs external commands and captures their output.
package process

import (
	"context"
	"os/exec"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/logger"
)

// An Executor runs a shell command line and returns its captured standard
// output.
type Executor interface {
	RunAndCapture(ctx context.Context, commandLine string) (string, error)
}

// ShellExecutor runs command lines through `sh -c`, with the child process
// environment taken from the injected environment store.
type ShellExecutor struct {
	Env    *env.Environment
	Logger logger.Logger
}

func (s *ShellExecutor) RunAndCapture(ctx context.Context, commandLine string) (string, error) {
	s.Logger.Debug("Running: sh -c %q", commandLine)

	cmd := exec.CommandContext(ctx, "sh", "-c", commandLine)
	cmd.Env = s.Env.ToSlice()

	output, err := cmd.Output()
	if err != nil {
		s.Logger.Debug("Could not run: sh -c %q (returned %q) (%T: %v)", commandLine, output, err, err)
		return "", err
	}

	return string(output), nil
}
