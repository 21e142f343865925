// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dylib

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"time"
)

const lddTimeout = 5 * time.Second

// LinkedLibs gathers the shared objects the executable with the given path
// is linked against.
//
// It invokes the "ldd" executable which is expected to be present on the
// system. It returns an [LDDExecError] in case "ldd" is not available or it
// returned with a non-zero exit code. This might be the case if the binary
// is not dynamically linked.
func LinkedLibs(ctx context.Context, path string) ([]string, error) {
	var lddOutput bytes.Buffer

	err := runLdd(ctx, path, &lddOutput)
	if err != nil {
		return nil, err
	}

	var infos ldInfos

	infos.parseFrom(&lddOutput)

	return infos.names(), nil
}

// References reports whether the executable with the given path records a
// dependency on the shared library with the given file name.
func References(ctx context.Context, path, libFileName string) (bool, error) {
	libs, err := LinkedLibs(ctx, path)
	if err != nil {
		return false, err
	}

	for _, lib := range libs {
		if filepath.Base(lib) == libFileName {
			return true, nil
		}
	}

	return false, nil
}

func runLdd(ctx context.Context, path string, outW io.Writer) error {
	var stderrBuf bytes.Buffer

	ctx, stop := context.WithTimeout(ctx, lddTimeout)
	defer stop()

	cmd := exec.CommandContext(ctx, "ldd", path)
	cmd.Stdout = outW
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	if err != nil {
		return &LDDExecError{
			Err:    err,
			Stderr: stderrBuf.String(),
		}
	}

	return nil
}

type ldInfos []ldInfo

// parseFrom takes a ldd output, processes each line and adds an [ldInfo] to
// the list.
func (l *ldInfos) parseFrom(lddOutput io.Reader) {
	scanner := bufio.NewScanner(lddOutput)
	for scanner.Scan() {
		var info ldInfo

		info.parseFrom(scanner.Text())

		*l = append(*l, info)
	}
}

// names returns the shared-object names of all entries that reference an
// actual file, either by resolved path or by being an absolute path
// themselves. Virtual objects like vdso have neither and are skipped.
func (l *ldInfos) names() []string {
	var names []string

	for _, i := range *l {
		switch {
		case filepath.IsAbs(i.name):
			names = append(names, i.name)
		case i.path != "":
			names = append(names, i.name)
		}
	}

	return names
}

type ldInfo struct {
	name  string
	path  string
	start uint
}

// parseFrom extracts the shared-object name and resolved path from a single
// ldd output line, if it has them.
func (l *ldInfo) parseFrom(line string) {
	// Format for shared objects that reference an absolute path.
	// From glibc rtld.c: _dl_printf ("\t%s => %s (0x%0*zx)\n",
	_, err := fmt.Sscanf(line, "\t%s => %s (0x%x)", &l.name, &l.path, &l.start)
	if err == nil {
		return
	}
	// Format for shared objects that do not reference anything and might be
	// an absolute path already.
	// From glibc rtld.c: _dl_printf ("\t%s (0x%0*zx)\n"
	_, _ = fmt.Sscanf(line, "\t%s (0x%x)", &l.name, &l.start)
}
