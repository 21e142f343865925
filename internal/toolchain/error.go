// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import (
	"errors"
	"fmt"

	"github.com/aibor/linkrun/internal/exitcode"
)

// StartError is returned if a tool process could not be launched at all,
// like a missing binary or a failing dynamic loader setup.
type StartError struct {
	Tool string
	Err  error
}

// Error implements the [error] interface.
func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Tool, e.Err)
}

// Is implements the [errors.Is] interface.
func (*StartError) Is(other error) bool {
	_, ok := other.(*StartError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StartError) Unwrap() error {
	return e.Err
}

// ExecError is returned if a tool process ran but terminated with an error.
// It carries the tool's captured stderr for diagnostics.
type ExecError struct {
	Tool   string
	Err    error
	Stderr string
}

// Error implements the [error] interface.
func (e *ExecError) Error() string {
	msg := fmt.Sprintf("exec %s: %v", e.Tool, e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*ExecError) Is(other error) bool {
	_, ok := other.(*ExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process's exit code and true if the process
// terminated on its own.
func (e *ExecError) ExitCode() (int, bool) {
	var exitErr exitcode.Error
	if errors.As(e.Err, &exitErr) {
		return exitErr.Code(), true
	}

	return -1, false
}
