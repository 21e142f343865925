// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if command help is requested.
	ErrHelp = flag.ErrHelp

	// ErrEmptyFilePath is returned if a file path argument is empty.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrNotRegularFile is returned if a file path argument does not point
	// to a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrNotDirectory is returned if a directory argument does not point to
	// a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrValueOutOfRange is returned if a numeric argument is outside of its
	// allowed range.
	ErrValueOutOfRange = errors.New("value is outside of range")

	// ErrReadBuildInfo is returned if the build info is not available.
	ErrReadBuildInfo = errors.New("build info not available")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

// Error implements the [error] interface.
func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

// Is implements the [errors.Is] interface.
func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseArgsError) Unwrap() error {
	return e.err
}
