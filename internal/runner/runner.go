package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single invocation when the caller does not
// provide its own budget.
const DefaultTimeout = 30 * time.Second

var (
	// ErrSpawnFailed reports that the child process could not be started
	// at all (missing binary, permission denied).
	ErrSpawnFailed = errors.New("process spawn failed")

	// ErrTimeout reports that the child did not exit before the deadline
	// and was killed.
	ErrTimeout = errors.New("process timed out")
)

// Result captures everything a single invocation produced. ExitCode is -1
// when the process never ran or was killed before exiting on its own.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	TimedOut bool
}

// Options carries optional process environment tweaks.
type Options struct {
	Dir string
	Env []string
}

// Runner executes an external command with a hard wall-clock timeout.
type Runner interface {
	Run(ctx context.Context, command string, args []string, timeout time.Duration) (Result, error)
}

// CmdRunner runs commands via os/exec. Arguments are always passed as a
// discrete list so values containing spaces or quotes survive intact.
type CmdRunner struct {
	Opts Options
}

func (r CmdRunner) Run(ctx context.Context, command string, args []string, timeout time.Duration) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, command, args...)
	if r.Opts.Dir != "" {
		cmd.Dir = r.Opts.Dir
	}
	if len(r.Opts.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Opts.Env...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	// cmd.Run waits for the child, so a context kill never leaves a
	// zombie behind.
	err := cmd.Run()

	res := Result{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes(), ExitCode: -1}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		res.TimedOut = true
		return res, fmt.Errorf("%w: %s did not finish within %s", ErrTimeout, command, timeout)
	}

	if err == nil {
		res.ExitCode = 0
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Ran but exited non-zero; the exit code is data for the
		// caller, not a transport failure.
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	return res, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
}

var _ Runner = CmdRunner{}
