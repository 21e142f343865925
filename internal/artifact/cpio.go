// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/cavaliergopher/cpio"
)

const numLinks = 2

// cpioWriter writes archive entries in cpio format.
type cpioWriter struct {
	writer *cpio.Writer
}

func newCPIOWriter(w io.Writer) *cpioWriter {
	return &cpioWriter{cpio.NewWriter(w)}
}

// Close closes the writer. Flush is called by the underlying closer.
func (w *cpioWriter) Close() error {
	err := w.writer.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (w *cpioWriter) writeHeader(hdr *cpio.Header) error {
	if err := w.writer.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// writeDirectory adds a directory entry for the given path to the archive.
func (w *cpioWriter) writeDirectory(path string) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | cpio.ModePerm,
		Links: numLinks,
	}

	return w.writeHeader(header)
}

// writeRegular copies an existing file from source into the archive.
func (w *cpioWriter) writeRegular(path string, source fs.File) error {
	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	header, err := cpio.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("create header: %w", err)
	}

	header.Name = path

	if err := w.writeHeader(header); err != nil {
		return err
	}

	if _, err := io.Copy(w.writer, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
