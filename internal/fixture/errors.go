// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrNoArtifactsRemoved is returned if the cleanup step did not find any
	// artifact files, which means the earlier steps did not produce the
	// library the final assertion depends on.
	ErrNoArtifactsRemoved = errors.New("no artifact files found to remove")

	// ErrNotLinkedAgainstLib is returned if link verification does not find
	// the library artifact in the executable's dependencies. A statically
	// bound library would make the final assertion pass for the wrong
	// reason.
	ErrNotLinkedAgainstLib = errors.New(
		"executable is not linked against the library artifact")
)

// CompileError is returned if one of the compile steps failed.
type CompileError struct {
	// Step names the failed compile step.
	Step string
	Err  error
}

// Error implements the [error] interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s: %v", e.Step, e.Err)
}

// Is implements the [errors.Is] interface.
func (*CompileError) Is(other error) bool {
	_, ok := other.(*CompileError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// RuntimeError is returned if the fixture's executable could not be
// launched.
type RuntimeError struct {
	Executable string
	Err        error
}

// Error implements the [error] interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("run %s: %v", e.Executable, e.Err)
}

// Is implements the [errors.Is] interface.
func (*RuntimeError) Is(other error) bool {
	_, ok := other.(*RuntimeError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// AssertionError is returned if the exit status of a run step does not match
// the expected polarity.
type AssertionError struct {
	// Step names the run step the assertion belongs to.
	Step string

	// ExpectFailure is the expected polarity.
	ExpectFailure bool

	// ExitCode is the observed exit code.
	ExitCode int
}

// Error implements the [error] interface.
func (e *AssertionError) Error() string {
	if e.ExpectFailure {
		return fmt.Sprintf("%s: expected non-zero exit code, got %d",
			e.Step, e.ExitCode)
	}

	return fmt.Sprintf("%s: expected exit code 0, got %d",
		e.Step, e.ExitCode)
}

// Is implements the [errors.Is] interface.
func (*AssertionError) Is(other error) bool {
	_, ok := other.(*AssertionError)
	return ok
}
