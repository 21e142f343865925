// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/aibor/linkrun/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvArgs(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected []string
	}{
		{
			name: "unset",
		},
		{
			name: "single",
			env:  "-debug",
			expected: []string{
				"-debug",
			},
		},
		{
			name: "multiple",
			env:  "-workdir /tmp/work  -debug",
			expected: []string{
				"-workdir", "/tmp/work", "-debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LINKRUN_ARGS", tt.env)

			assert.Equal(t, tt.expected, cmd.EnvArgs())
		})
	}
}

func TestLocalConfigArgs(t *testing.T) {
	t.Setenv("SOME_DIR", "/tmp/work")

	tests := []struct {
		name     string
		fsys     fstest.MapFS
		expected []string
	}{
		{
			name: "no file",
			fsys: fstest.MapFS{},
		},
		{
			name: "args with env expansion",
			fsys: fstest.MapFS{
				".linkrun-args": &fstest.MapFile{
					Data: []byte("-workdir=${SOME_DIR}\n\n-debug\n"),
				},
			},
			expected: []string{
				"-workdir=/tmp/work",
				"-debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := cmd.LocalConfigArgs(tt.fsys, ".linkrun-args")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestMergedArgs(t *testing.T) {
	t.Setenv("LINKRUN_ARGS", "-timeout 30")

	fsys := fstest.MapFS{
		".linkrun-args": &fstest.MapFile{
			Data: []byte("-debug\n"),
		},
	}

	args, err := cmd.MergedArgs(
		[]string{"linkrun", "-timeout", "90"},
		fsys,
		".linkrun-args",
	)
	require.NoError(t, err)

	// Command line args come last, so they win on repeated flags.
	assert.Equal(t, []string{
		"linkrun",
		"-timeout", "30",
		"-debug",
		"-timeout", "90",
	}, args)
}
