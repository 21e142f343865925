// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package toolchain invokes the external build tools a fixture sequences. It
// treats compilers, linkers and the produced executable itself as opaque
// commands that are judged only by their exit status and output.
package toolchain
