// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/aibor/linkrun/internal/dylib"
	"github.com/aibor/linkrun/internal/toolchain"
)

// Runner executes the fixture sequence described by a [Spec].
type Runner struct {
	spec   *Spec
	stdout io.Writer
	stderr io.Writer

	// Tool execution and link inspection are injectable, so the sequencing
	// can be tested without real compilers present.
	run        runFunc
	references referencesFunc
}

type runFunc func(
	ctx context.Context,
	cmd *toolchain.Command,
	stdout, stderr io.Writer,
) error

type referencesFunc func(ctx context.Context, path, lib string) (bool, error)

// New creates a [Runner] for the given spec. Tool output is forwarded to the
// given writers.
func New(spec *Spec, stdout, stderr io.Writer) *Runner {
	return &Runner{
		spec:   spec,
		stdout: stdout,
		stderr: stderr,
		run: func(
			ctx context.Context,
			cmd *toolchain.Command,
			stdout, stderr io.Writer,
		) error {
			return cmd.Run(ctx, stdout, stderr)
		},
		references: dylib.References,
	}
}

type step struct {
	name string
	run  func(context.Context) error
}

// Run executes the five fixture steps in order, aborting on the first
// failure. The sequence is strictly linear:
//
//	Start -> CompiledLib -> CompiledExe -> Ran -> Cleaned -> Asserted
//
// It returns nil if all steps completed and the final assertion held.
func (r *Runner) Run(ctx context.Context) error {
	steps := []step{
		{"compile-lib", r.compileLibrary},
		{"compile-exe", r.compileExecutable},
		{"run", r.runExecutable},
		{"remove-dylibs", r.removeArtifacts},
		{"check-rerun", r.assertReRun},
	}

	for _, s := range steps {
		slog.Debug("Step starting", slog.String("step", s.name))

		err := r.runStep(ctx, s)
		if err != nil {
			slog.Debug("Step failed",
				slog.String("step", s.name),
				slog.Any("error", err),
			)

			return err
		}

		slog.Debug("Step done", slog.String("step", s.name))
	}

	return nil
}

func (r *Runner) runStep(ctx context.Context, s step) error {
	if r.spec.StepTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.spec.StepTimeout)
		defer cancel()
	}

	return s.run(ctx)
}

func (r *Runner) exePath() string {
	return filepath.Join(r.spec.WorkDir, r.spec.Executable)
}

func (r *Runner) compileLibrary(ctx context.Context) error {
	cmd := toolchain.LibraryCompile(
		r.spec.LibCompiler,
		r.spec.LibSource,
		r.spec.WorkDir,
	)

	slog.Debug("Compile command", slog.String("command", cmd.String()))

	err := r.run(ctx, cmd, r.stdout, r.stderr)
	if err != nil {
		return &CompileError{Step: "library", Err: err}
	}

	return nil
}

func (r *Runner) compileExecutable(ctx context.Context) error {
	searchDirs := []string{r.spec.WorkDir}
	if r.spec.HostLibDir != "" {
		searchDirs = append(searchDirs, r.spec.HostLibDir)
	}

	cmd := toolchain.ExecutableCompile(
		r.spec.CCompiler,
		r.spec.MainSource,
		r.exePath(),
		r.spec.Artifact,
		searchDirs,
		dylib.RPathLinkArgs(r.spec.HostLibDir),
	)

	slog.Debug("Link command", slog.String("command", cmd.String()))

	err := r.run(ctx, cmd, r.stdout, r.stderr)
	if err != nil {
		return &CompileError{Step: "executable", Err: err}
	}

	if r.spec.VerifyLink {
		return r.verifyLink(ctx)
	}

	return nil
}

func (r *Runner) verifyLink(ctx context.Context) error {
	lib := dylib.FileName(r.spec.Artifact)

	linked, err := r.references(ctx, r.exePath(), lib)
	if err != nil {
		return fmt.Errorf("verify link: %w", err)
	}

	if !linked {
		return fmt.Errorf("%s: %w", lib, ErrNotLinkedAgainstLib)
	}

	return nil
}

func (r *Runner) runExecutable(ctx context.Context) error {
	return r.execFixture(ctx, "run", false)
}

func (r *Runner) removeArtifacts(_ context.Context) error {
	removed, err := dylib.RemoveArtifacts(r.spec.WorkDir, r.spec.Artifact)
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		return ErrNoArtifactsRemoved
	}

	slog.Debug("Removed artifacts", slog.Any("files", removed))

	return nil
}

func (r *Runner) assertReRun(ctx context.Context) error {
	return r.execFixture(ctx, "check-rerun", r.spec.ExpectFinalFailure)
}

// execFixture runs the fixture's executable with the loader search path
// extended so the library artifact resolves from the work directory. The
// observed exit status is checked against the expected polarity.
func (r *Runner) execFixture(
	ctx context.Context,
	stepName string,
	expectFailure bool,
) error {
	exePath := r.exePath()

	if err := probeExecutable(exePath); err != nil {
		return &RuntimeError{Executable: exePath, Err: err}
	}

	searchPath := dylib.SearchPath(r.spec.RPathDir, r.spec.WorkDir)

	cmd := &toolchain.Command{
		Executable: exePath,
		Env:        []string{dylib.SearchPathVar() + "=" + searchPath},
	}

	err := r.run(ctx, cmd, r.stdout, r.stderr)

	var execErr *toolchain.ExecError

	switch {
	case err == nil:
		if expectFailure {
			return &AssertionError{
				Step:          stepName,
				ExpectFailure: true,
			}
		}

		return nil
	case errors.As(err, &execErr):
		code, exited := execErr.ExitCode()
		if !exited {
			return &RuntimeError{Executable: exePath, Err: err}
		}

		if expectFailure {
			slog.Debug("Run failed as expected",
				slog.String("step", stepName),
				slog.Int("exitcode", code),
			)

			return nil
		}

		return &AssertionError{Step: stepName, ExitCode: code}
	default:
		return &RuntimeError{Executable: exePath, Err: err}
	}
}

// probeExecutable checks the file can be executed at all, so a missing or
// non-executable binary surfaces as a launch failure instead of a confusing
// exit-status mismatch.
func probeExecutable(path string) error {
	err := unix.Access(path, unix.X_OK)
	if err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}

	return nil
}
