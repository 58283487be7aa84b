package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// ExitStatus describes how an external process terminated. Signaled exits
// report the shell convention 128+signal in Code so that the status stays
// comparable to what a user would see in their terminal.
type ExitStatus struct {
	Code     int
	Signaled bool
	Signal   string
}

// Executor runs external commands. It is the single choke point for
// shelling out, so tests can substitute a fake without spawning processes.
type Executor interface {
	// Run executes the command with the parent's standard streams attached
	// and blocks until the child terminates. A non-nil error means the
	// command could not be started at all; a started command that exits
	// non-zero is reported through ExitStatus only.
	Run(ctx context.Context, env []string, name string, args ...string) (ExitStatus, error)
	// Output executes the command with captured stdout and discarded stderr.
	Output(ctx context.Context, name string, args ...string) (string, ExitStatus, error)
}

// NewOSExecutor returns an Executor backed by os/exec.
func NewOSExecutor() Executor { return &osExecutor{} }

type osExecutor struct{}

func (e *osExecutor) Run(ctx context.Context, env []string, name string, args ...string) (ExitStatus, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if env != nil {
		cmd.Env = env
	}

	return exitStatus(cmd.Run())
}

func (e *osExecutor) Output(ctx context.Context, name string, args ...string) (string, ExitStatus, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()

	status, err := exitStatus(err)

	return string(out), status, err
}

func exitStatus(err error) (ExitStatus, error) {
	if err == nil {
		return ExitStatus{}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// The command never started (not found, permission denied, ...).
		return ExitStatus{Code: -1}, err
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		sig := ws.Signal()

		return ExitStatus{
			Code:     128 + int(sig),
			Signaled: true,
			Signal:   sig.String(),
		}, nil
	}

	return ExitStatus{Code: exitErr.ExitCode()}, nil
}
