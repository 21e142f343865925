// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/aibor/linkrun/internal/artifact"
	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	archiveFile, err := os.Open(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = archiveFile.Close() })

	entries := make(map[string]string)
	reader := cpio.NewReader(archiveFile)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		body, err := io.ReadAll(reader)
		require.NoError(t, err)

		entries[hdr.Name] = string(body)
	}

	return entries
}

func TestWriteArchive(t *testing.T) {
	fsys := fstest.MapFS{
		"main":           &fstest.MapFile{Data: []byte("binary")},
		"logs/build.log": &fstest.MapFile{Data: []byte("compiled fine")},
	}

	archivePath := filepath.Join(t.TempDir(), "artifacts.cpio")

	err := artifact.WriteArchive(archivePath, fsys)
	require.NoError(t, err)

	entries := readArchive(t, archivePath)
	assert.Equal(t, map[string]string{
		"main":           "binary",
		"logs":           "",
		"logs/build.log": "compiled fine",
	}, entries)
}

func TestWriteArchiveEmpty(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "artifacts.cpio")

	err := artifact.WriteArchive(archivePath, fstest.MapFS{})
	require.NoError(t, err)

	entries := readArchive(t, archivePath)
	assert.Empty(t, entries)
}

func TestWriteArchiveBadPath(t *testing.T) {
	err := artifact.WriteArchive("/nonexistent/dir/artifacts.cpio", fstest.MapFS{})
	require.Error(t, err)
}
