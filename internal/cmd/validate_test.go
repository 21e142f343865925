// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/linkrun/internal/cmd"
	"github.com/aibor/linkrun/internal/fixture"
	"github.com/stretchr/testify/require"
)

// validSpec creates a spec whose tools and sources all exist.
func validSpec(t *testing.T) *fixture.Spec {
	t.Helper()

	dir := t.TempDir()

	for _, tool := range []string{"rustc", "cc"} {
		err := os.WriteFile(
			filepath.Join(dir, tool), []byte("#!/bin/sh\n"), 0o755,
		)
		require.NoError(t, err)
	}

	for _, source := range []string{"lib.rs", "main.c"} {
		err := os.WriteFile(
			filepath.Join(dir, source), []byte("content"), 0o644,
		)
		require.NoError(t, err)
	}

	spec := fixture.NewSpec()
	spec.WorkDir = dir
	spec.LibCompiler = filepath.Join(dir, "rustc")
	spec.CCompiler = filepath.Join(dir, "cc")
	spec.LibSource = filepath.Join(dir, "lib.rs")
	spec.MainSource = filepath.Join(dir, "main.c")

	return spec
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*fixture.Spec)
		assertErr require.ErrorAssertionFunc
	}{
		{
			name:      "valid",
			modify:    func(*fixture.Spec) {},
			assertErr: require.NoError,
		},
		{
			name: "missing library compiler",
			modify: func(spec *fixture.Spec) {
				spec.LibCompiler = "/nonexistent/rustc"
			},
			assertErr: require.Error,
		},
		{
			name: "missing C compiler",
			modify: func(spec *fixture.Spec) {
				spec.CCompiler = "/nonexistent/cc"
			},
			assertErr: require.Error,
		},
		{
			name: "missing library source",
			modify: func(spec *fixture.Spec) {
				spec.LibSource = filepath.Join(spec.WorkDir, "missing.rs")
			},
			assertErr: require.Error,
		},
		{
			name: "missing main source",
			modify: func(spec *fixture.Spec) {
				spec.MainSource = filepath.Join(spec.WorkDir, "missing.c")
			},
			assertErr: require.Error,
		},
		{
			name: "work directory is a file",
			modify: func(spec *fixture.Spec) {
				spec.WorkDir = spec.LibSource
			},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, cmd.ErrNotDirectory)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec(t)
			tt.modify(spec)

			tt.assertErr(t, cmd.Validate(spec))
		})
	}
}
