// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/aibor/linkrun/internal/exitcode"
	"github.com/aibor/linkrun/internal/fixture"
	"github.com/stretchr/testify/assert"
)

func TestHandleRunError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "assertion",
			err:      &fixture.AssertionError{Step: "check-rerun"},
			expected: exitcode.Assertion,
		},
		{
			name:     "compile",
			err:      &fixture.CompileError{Step: "library", Err: assert.AnError},
			expected: exitcode.Compile,
		},
		{
			name:     "runtime",
			err:      &fixture.RuntimeError{Executable: "main", Err: assert.AnError},
			expected: exitcode.Runtime,
		},
		{
			name:     "other",
			err:      assert.AnError,
			expected: exitcode.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handleRunError(tt.err))
		})
	}
}

func testIO() (IO, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	return IO{
		Stdin:  bytes.NewReader(nil),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRunInvalidArgs(t *testing.T) {
	t.Setenv(EnvArgsVar, "")

	cfg, _, _ := testIO()

	rc := Run(context.Background(), []string{"linkrun", "-unknown"}, cfg)
	assert.Equal(t, exitcode.Internal, rc)
}

func TestRunHelp(t *testing.T) {
	t.Setenv(EnvArgsVar, "")

	cfg, _, stderr := testIO()

	rc := Run(context.Background(), []string{"linkrun", "-help"}, cfg)
	assert.Equal(t, exitcode.Pass, rc)
	assert.Contains(t, stderr.String(), "Usage of 'linkrun'")
}

func TestRunVersion(t *testing.T) {
	t.Setenv(EnvArgsVar, "")

	cfg, stdout, _ := testIO()

	rc := Run(context.Background(), []string{"linkrun", "-version"}, cfg)
	assert.Equal(t, exitcode.Pass, rc)
	assert.Contains(t, stdout.String(), "Version:")
}
