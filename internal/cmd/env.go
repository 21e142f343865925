// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Environment variables of the surrounding test harness.
const (
	// EnvArgsVar holds additional linkrun arguments.
	EnvArgsVar = "LINKRUN_ARGS"

	// EnvWorkDir is the harness's directory for build artifacts.
	EnvWorkDir = "TMPDIR"

	// EnvBuildStage selects the staged host-library directory to search at
	// link time.
	EnvBuildStage = "RUST_BUILD_STAGE"

	// EnvRPathDir is the dynamic-loader search path for run steps. It is
	// extended with the work directory.
	EnvRPathDir = "TARGET_RPATH_DIR"
)

// EnvArgs returns linkrun arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(EnvArgsVar))
}

// LocalConfigArgs returns linkrun arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may be
// used and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs merges the given command line arguments with arguments from the
// environment and the local config file. Command line arguments have the
// highest precedence, environment arguments the lowest.
func MergedArgs(
	args []string,
	fsys fs.FS,
	localConfigFile string,
) ([]string, error) {
	localArgs, err := LocalConfigArgs(fsys, localConfigFile)
	if err != nil {
		return nil, fmt.Errorf("local config args: %w", err)
	}

	merged := make([]string, 0, len(args)+len(localArgs))
	merged = append(merged, args[0])
	merged = append(merged, EnvArgs()...)
	merged = append(merged, localArgs...)
	merged = append(merged, args[1:]...)

	return merged, nil
}
