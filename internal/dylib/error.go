// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dylib

import "fmt"

// LDDExecError wraps errors of the ldd execution.
type LDDExecError struct {
	Err    error
	Stderr string
}

// Error implements the [error] interface.
func (e *LDDExecError) Error() string {
	return fmt.Sprintf("ldd: %v: %s", e.Err, e.Stderr)
}

// Is implements the [errors.Is] interface.
func (*LDDExecError) Is(other error) bool {
	_, ok := other.(*LDDExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *LDDExecError) Unwrap() error {
	return e.Err
}
