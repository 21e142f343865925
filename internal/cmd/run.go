// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/aibor/linkrun/internal/artifact"
	"github.com/aibor/linkrun/internal/exitcode"
	"github.com/aibor/linkrun/internal/fixture"
)

const localConfigFile = ".linkrun-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func parseFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.parseArgs(args[1:])
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func loadFixtureFile(flags *flags) error {
	if flags.fixtureFile == "" {
		return nil
	}

	dir, file := filepath.Split(string(flags.fixtureFile))
	if dir == "" {
		dir = "."
	}

	err := fixture.LoadFile(os.DirFS(dir), file, flags.spec)
	if err != nil {
		return fmt.Errorf("fixture file: %w", err)
	}

	return nil
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	err := loadFixtureFile(flags)
	if err != nil {
		return err
	}

	err = Validate(flags.spec)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	runner := fixture.New(flags.spec, cfg.Stdout, cfg.Stderr)

	runErr := runner.Run(ctx)

	// The archive is written regardless of the outcome, so failed runs can
	// be inspected post mortem as well.
	if flags.archivePath != "" {
		err := artifact.WriteArchive(
			string(flags.archivePath),
			os.DirFS(flags.spec.WorkDir),
		)
		if err != nil {
			return errors.Join(runErr, fmt.Errorf("artifact archive: %w", err))
		}

		slog.Debug("Wrote artifact archive",
			slog.String("path", string(flags.archivePath)))
	}

	return runErr
}

func handleParseArgsError(err error) int {
	// ErrHelp is returned when help is requested. So exit without error in
	// this case.
	if errors.Is(err, ErrHelp) {
		return exitcode.Pass
	}

	// ParseArgs already prints errors, so we just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return exitcode.Internal
}

func handleRunError(err error) int {
	slog.Error(err.Error())

	switch {
	case errors.Is(err, &fixture.AssertionError{}):
		return exitcode.Assertion
	case errors.Is(err, &fixture.CompileError{}):
		return exitcode.Compile
	case errors.Is(err, &fixture.RuntimeError{}):
		return exitcode.Runtime
	default:
		return exitcode.Internal
	}
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseFlags(args, cfg)
	if err != nil {
		setupLogging(cfg.Stderr, false)
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	if flags.version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return exitcode.Internal
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return exitcode.Pass
	}

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return exitcode.Pass
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
