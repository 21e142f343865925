// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"os/exec"

	"github.com/aibor/linkrun/internal/fixture"
)

// Validate checks the tools and file parameters of the given [fixture.Spec].
func Validate(spec *fixture.Spec) error {
	// Check the compilers can be resolved at all, so a missing toolchain
	// surfaces as an argument error instead of a failed compile step.
	_, err := exec.LookPath(spec.LibCompiler)
	if err != nil {
		return fmt.Errorf("library compiler: %w", err)
	}

	_, err = exec.LookPath(spec.CCompiler)
	if err != nil {
		return fmt.Errorf("C compiler: %w", err)
	}

	err = ValidateFilePath(spec.LibSource)
	if err != nil {
		return fmt.Errorf("library source: %w", err)
	}

	err = ValidateFilePath(spec.MainSource)
	if err != nil {
		return fmt.Errorf("main source: %w", err)
	}

	err = ValidateDirPath(spec.WorkDir)
	if err != nil {
		return fmt.Errorf("work directory: %w", err)
	}

	return nil
}
