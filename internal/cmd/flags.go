// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aibor/linkrun/internal/dylib"
	"github.com/aibor/linkrun/internal/fixture"
)

const (
	name = "linkrun"

	timeoutDefault = 60
	timeoutMin     = 1
	timeoutMax     = 600

	usageMessage = `Usage of 'linkrun':
    linkrun [flags...]

Runs a single dynamic-linking test fixture in the work directory: compiles
the library source into a dynamic library, compiles and links the C main
source against it, runs the executable, removes the library artifact and
asserts the expected result of a second run.

The harness environment variables TMPDIR, RUST_BUILD_STAGE and
TARGET_RPATH_DIR preset the work directory, the staged host-library
directory and the loader search path.

All linkrun flags can also be provided via environment variable LINKRUN_ARGS:
	LINKRUN_ARGS="-debug" linkrun -fixture fixture.yaml

All linkrun flags can also be provided via file ./.linkrun-args, with one
argument per line.

`
)

type flags struct {
	spec *fixture.Spec

	stageRoot    FilePath
	buildStage   string
	fixtureFile  FilePath
	archivePath  FilePath
	timeoutSecs  uint64
	noVerifyLink bool
	debug        bool
	version      bool

	flagSet *flag.FlagSet
}

func newFlags(output io.Writer) *flags {
	spec := fixture.NewSpec()

	// os.TempDir honors the harness's TMPDIR.
	spec.WorkDir = os.TempDir()
	spec.RPathDir = os.Getenv(EnvRPathDir)

	f := &flags{
		spec:        spec,
		buildStage:  os.Getenv(EnvBuildStage),
		timeoutSecs: timeoutDefault,
	}

	f.initFlagSet(output)

	return f
}

func (f *flags) initFlagSet(output io.Writer) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageMessage)
		fs.PrintDefaults()
	}

	fs.Var(
		(*FilePath)(&f.spec.WorkDir),
		"workdir",
		"directory build artifacts are written to",
	)

	fs.StringVar(
		&f.spec.LibCompiler,
		"lib-compiler",
		f.spec.LibCompiler,
		"compiler producing the dynamic library",
	)

	fs.StringVar(
		&f.spec.CCompiler,
		"cc",
		f.spec.CCompiler,
		"C compiler and linker producing the executable",
	)

	fs.StringVar(
		&f.spec.LibSource,
		"lib-source",
		f.spec.LibSource,
		"library source file",
	)

	fs.StringVar(
		&f.spec.MainSource,
		"main-source",
		f.spec.MainSource,
		"executable source file",
	)

	fs.StringVar(
		&f.spec.Artifact,
		"artifact",
		f.spec.Artifact,
		"link name of the dynamic library",
	)

	fs.StringVar(
		&f.spec.Executable,
		"executable",
		f.spec.Executable,
		"name of the produced binary",
	)

	fs.Var(
		&f.stageRoot,
		"stage-root",
		"root of the staged host-library directories",
	)

	fs.StringVar(
		&f.buildStage,
		"build-stage",
		f.buildStage,
		"build stage selecting the staged host-library directory",
	)

	fs.StringVar(
		&f.spec.RPathDir,
		"rpath-dir",
		f.spec.RPathDir,
		"loader search path for run steps",
	)

	fs.Var(
		&f.fixtureFile,
		"fixture",
		"fixture definition `file`",
	)

	fs.Var(
		&f.archivePath,
		"artifact-archive",
		"write the work directory as cpio archive to this `file`",
	)

	fs.Var(
		&limitedUintValue{&f.timeoutSecs, timeoutMin, timeoutMax},
		"timeout",
		"per-step timeout in seconds",
	)

	fs.BoolVar(
		&f.noVerifyLink,
		"no-verify-link",
		f.noVerifyLink,
		"skip checking that the executable links the library artifact",
	)

	fs.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	fs.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = fs
}

// parseArgs parses the given arguments, not including the program name, and
// finalizes the fixture spec.
func (f *flags) parseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}

		return &ParseArgsError{msg: "parse args", err: err}
	}

	if f.flagSet.NArg() > 0 {
		fmt.Fprintf(f.flagSet.Output(),
			"unexpected argument: %s\n", f.flagSet.Arg(0))
		f.flagSet.Usage()

		return &ParseArgsError{msg: "unexpected positional arguments"}
	}

	f.spec.StepTimeout = time.Duration(f.timeoutSecs) * time.Second
	f.spec.VerifyLink = !f.noVerifyLink
	f.spec.HostLibDir = dylib.StageLibDir(string(f.stageRoot), f.buildStage)

	return nil
}
