package sprite

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner starts a process and waits for it. A non-zero exit is reported in
// Result.ExitCode, not as an error; errors mean the process could not run.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	err := command.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		return res, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}
