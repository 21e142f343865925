// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

// LibraryCompile returns the command that compiles source into a dynamic
// library placed in outDir. The library compiler determines the library's
// file name from the source, so outDir is also added to its own library
// search path for sources that depend on previously built artifacts.
func LibraryCompile(compiler, source, outDir string) *Command {
	return &Command{
		Executable: compiler,
		Args: []string{
			source,
			"--out-dir", outDir,
			"-L", outDir,
		},
	}
}

// ExecutableCompile returns the command that compiles source with a C
// compiler and links it into the executable at outPath against the library
// with the given link name. Each search dir is added to the link-time library
// search path. Additional linker args, like rpath-link flags, are appended
// verbatim.
func ExecutableCompile(
	cc, source, outPath, lib string,
	searchDirs, linkArgs []string,
) *Command {
	args := []string{source, "-o", outPath, "-l" + lib}

	for _, dir := range searchDirs {
		args = append(args, "-L", dir)
	}

	args = append(args, linkArgs...)

	return &Command{
		Executable: cc,
		Args:       args,
	}
}
