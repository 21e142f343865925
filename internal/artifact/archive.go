// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotRegularFile is returned if an archive source is neither a directory
// nor a regular file.
var ErrNotRegularFile = errors.New("not a regular file")

// WriteArchive bundles all directories and regular files of the given file
// system into a cpio archive at path. Irregular files, like sockets or
// device nodes, are skipped.
func WriteArchive(path string, fsys fs.FS) error {
	archiveFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer archiveFile.Close()

	writer := newCPIOWriter(archiveFile)

	err = writeAll(writer, fsys)
	if err != nil {
		_ = writer.Close()
		_ = os.Remove(path)

		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}

	if err := archiveFile.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}

func writeAll(writer *cpioWriter, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(
		path string, entry fs.DirEntry, err error,
	) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		switch {
		case entry.IsDir():
			return writer.writeDirectory(path)
		case entry.Type().IsRegular():
			source, err := fsys.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer source.Close()

			return writer.writeRegular(path, source)
		default:
			return nil
		}
	})
}
