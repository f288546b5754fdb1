package process_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/logger"
	"github.com/dave-wwg/load-secrets-action/process"
)

func TestRunAndCapture(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	e := &process.ShellExecutor{
		Env:    env.FromMap(map[string]string{"GREETING": "hello"}),
		Logger: logger.NewBuffer(),
	}

	out, err := e.RunAndCapture(context.Background(), `printf '%s' "$GREETING"`)
	if err != nil {
		t.Fatalf("RunAndCapture() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("RunAndCapture() = %q, want %q", out, "hello")
	}
}

func TestRunAndCaptureFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	e := &process.ShellExecutor{
		Env:    env.New(),
		Logger: logger.NewBuffer(),
	}

	if _, err := e.RunAndCapture(context.Background(), "exit 42"); err == nil {
		t.Error("RunAndCapture() error = nil, want an exit error")
	}
}
