// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fixture

import "time"

// Defaults of a [Spec]. They match the conventional fixture layout: a
// library source building a dynamic library named "boot" and a C main source
// building an executable named "main".
const (
	DefaultLibCompiler = "rustc"
	DefaultCCompiler   = "cc"
	DefaultLibSource   = "lib.rs"
	DefaultMainSource  = "main.c"
	DefaultArtifact    = "boot"
	DefaultExecutable  = "main"
	DefaultStepTimeout = 60 * time.Second
)

// Spec describes a single fixture run.
type Spec struct {
	// WorkDir is the directory build artifacts are written to and removed
	// from. Sources with relative paths are resolved from the runner's own
	// working directory, not from WorkDir.
	WorkDir string

	// LibCompiler is the compiler producing the dynamic library.
	LibCompiler string

	// CCompiler is the C compiler and linker producing the executable.
	CCompiler string

	// LibSource is the library's source file.
	LibSource string

	// MainSource is the executable's source file.
	MainSource string

	// Artifact is the link name of the dynamic library, like "boot" for
	// libboot.so. It is also the pattern artifacts are removed by.
	Artifact string

	// Executable is the name of the produced binary in WorkDir.
	Executable string

	// HostLibDir is the staged host-library directory searched at link time
	// for the compiler's runtime libraries. May be empty.
	HostLibDir string

	// RPathDir is the dynamic-loader search path used for run steps. It is
	// extended with WorkDir, so the library from the compile step resolves.
	RPathDir string

	// StepTimeout bounds each single step.
	StepTimeout time.Duration

	// VerifyLink checks with ldd that the executable actually records a
	// dependency on the library artifact after linking.
	VerifyLink bool

	// ExpectFinalFailure is the polarity of the final assertion: if set, the
	// re-run after artifact removal must fail, otherwise it must still
	// succeed.
	ExpectFinalFailure bool
}

// NewSpec returns a [Spec] with all defaults applied.
func NewSpec() *Spec {
	return &Spec{
		LibCompiler:        DefaultLibCompiler,
		CCompiler:          DefaultCCompiler,
		LibSource:          DefaultLibSource,
		MainSource:         DefaultMainSource,
		Artifact:           DefaultArtifact,
		Executable:         DefaultExecutable,
		StepTimeout:        DefaultStepTimeout,
		VerifyLink:         true,
		ExpectFinalFailure: true,
	}
}
