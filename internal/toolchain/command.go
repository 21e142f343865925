// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aibor/linkrun/internal/exitcode"
)

// Command is a single external tool invocation.
type Command struct {
	// Path to the executable. Resolved via the PATH environment variable if
	// it does not contain a path separator.
	Executable string

	// Arguments passed to the executable.
	Args []string

	// Working directory for the process. Empty means the caller's directory.
	Dir string

	// Env are additional environment variables in "key=value" format. They
	// are appended to the runner's own environment.
	Env []string
}

// String returns the complete command line for log output.
func (c *Command) String() string {
	return strings.Join(append([]string{c.Executable}, c.Args...), " ")
}

// Run executes the command and blocks until it terminated.
//
// The process's stdout and stderr are forwarded to the given writers while it
// runs. Stderr is captured as well, so errors carry the tool's diagnostics.
//
// If the process cannot be started, a [StartError] is returned. If it
// terminates with a non-zero exit code, an [ExecError] wrapping an
// [exitcode.Error] is returned.
func (c *Command) Run(ctx context.Context, stdout, stderr io.Writer) error {
	var stderrBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Executable, c.Args...)
	cmd.Dir = c.Dir

	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return &StartError{Tool: c.Executable, Err: err}
	}

	// The pipes must be drained before Wait is called, so the process can
	// not block on a full pipe and the captured output is complete.
	outputs := errgroup.Group{}
	outputs.Go(func() error {
		_, err := io.Copy(stdout, outPipe)
		return err
	})
	outputs.Go(func() error {
		_, err := io.Copy(io.MultiWriter(stderr, &stderrBuf), errPipe)
		return err
	})

	copyErr := outputs.Wait()

	if err := cmd.Wait(); err != nil {
		return &ExecError{
			Tool:   c.Executable,
			Err:    waitError(err),
			Stderr: stderrBuf.String(),
		}
	}

	if copyErr != nil {
		return fmt.Errorf("forward output: %w", copyErr)
	}

	return nil
}

// waitError converts the error returned by [exec.Cmd.Wait] into an
// [exitcode.Error] if the process terminated on its own.
func waitError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitcode.Error(exitErr.ExitCode())
	}

	return err
}
