// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dylib

import (
	"path/filepath"
	"runtime"
	"strings"
)

// SearchPathVar returns the name of the environment variable the platform's
// dynamic loader reads additional library search paths from.
func SearchPathVar() string {
	switch runtime.GOOS {
	case "darwin":
		return "DYLD_LIBRARY_PATH"
	case "windows":
		return "PATH"
	default:
		return "LD_LIBRARY_PATH"
	}
}

// SearchPath joins the given directories into a loader search path, skipping
// empty entries.
func SearchPath(dirs ...string) string {
	nonEmpty := make([]string, 0, len(dirs))

	for _, dir := range dirs {
		if dir != "" {
			nonEmpty = append(nonEmpty, dir)
		}
	}

	return strings.Join(nonEmpty, string(filepath.ListSeparator))
}

// RPathLinkArgs returns the linker arguments that make dir available for
// resolving transitive shared-object dependencies at link time. Loaders that
// resolve transitive dependencies themselves need no flags, so the result
// may be empty.
func RPathLinkArgs(dir string) []string {
	if dir == "" {
		return nil
	}

	switch runtime.GOOS {
	case "darwin", "windows":
		return nil
	default:
		return []string{"-Wl,-rpath-link," + dir}
	}
}

// StageLibDir returns the staged host-library directory for the given build
// stage, like "<root>/stage2/lib". An empty root or stage yields an empty
// path, meaning no staged directory is searched.
func StageLibDir(root, stage string) string {
	if root == "" || stage == "" {
		return ""
	}

	return filepath.Join(root, "stage"+stage, "lib")
}
