// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package artifact bundles a fixture's work directory into a cpio archive,
// so the harness can collect build outputs for post-mortem inspection after
// the fixture itself cleaned up or failed.
package artifact
