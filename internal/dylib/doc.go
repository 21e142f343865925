// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dylib provides the platform conventions around shared libraries a
// link-test fixture depends on: file naming, dynamic-loader search paths,
// staged host-library directories, artifact removal and linked-library
// inspection.
package dylib
