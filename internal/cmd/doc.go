// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for linkrun. It handles
// flag parsing, harness environment lookup, error handling, and exit-code
// mapping.
package cmd
