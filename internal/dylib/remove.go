// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dylib

import (
	"fmt"
	"os"
	"path/filepath"
)

// RemoveArtifacts deletes all files in dir whose base name contains name and
// returns the paths of the removed files.
//
// Removal must succeed even if a running process still has a library mapped.
// That is plain unlink semantics on POSIX systems, so no special handling is
// required here.
func RemoveArtifacts(dir, name string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+name+"*"))
	if err != nil {
		return nil, fmt.Errorf("glob: %w", err)
	}

	removed := make([]string, 0, len(matches))

	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove artifact: %w", err)
		}

		removed = append(removed, path)
	}

	return removed, nil
}
