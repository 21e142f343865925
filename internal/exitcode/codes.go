// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode defines the process exit codes the fixture runner
// communicates results with, and helpers for deriving them from errors.
package exitcode

// Reserved exit codes of the runner process. They describe the class of the
// failure, so the harness can distinguish a failed assertion from a broken
// fixture without parsing output.
const (
	// Pass is returned if the fixture passed.
	Pass = 0

	// Assertion is returned if an exit-status assertion did not hold.
	Assertion = 1

	// Compile is returned if one of the compile steps failed.
	Compile = 2

	// Runtime is returned if the fixture's executable could not be launched.
	Runtime = 3

	// Internal is returned for issues of the runner itself, like invalid
	// arguments. High enough to not collide with common tool exit codes.
	Internal = 125
)
