// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fixture runs a single dynamic-linking test fixture: a fixed,
// linear sequence of build-tool invocations that compiles a shared library,
// compiles and links an executable against it, runs the executable, removes
// the library artifact and asserts that a second run fails to launch.
//
// The sequence aborts on the first failing step. There is no branching and
// no retry; the only state a step leaves behind are files in the fixture's
// work directory and the observed exit status of the run steps.
package fixture
