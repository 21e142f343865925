// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrExpectInvalid is returned for an unknown expect value in a fixture
// definition file.
var ErrExpectInvalid = errors.New(`expect must be "fail" or "pass"`)

// File is the on-disk fixture definition. All fields are optional; empty
// fields keep the spec's current value.
type File struct {
	Lib        string `yaml:"lib"`
	Main       string `yaml:"main"`
	Artifact   string `yaml:"artifact"`
	Executable string `yaml:"executable"`
	Expect     string `yaml:"expect"`
}

// LoadFile reads a YAML fixture definition from the given file system and
// applies it to the spec. Unknown fields are rejected, so typos in fixture
// files fail loudly instead of silently testing the defaults.
func LoadFile(fsys fs.FS, name string, spec *Spec) error {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read fixture file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	var file File

	// An empty definition file is valid and keeps all defaults.
	err = decoder.Decode(&file)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse fixture file: %w", err)
	}

	return file.apply(spec)
}

func (f *File) apply(spec *Spec) error {
	if f.Lib != "" {
		spec.LibSource = f.Lib
	}

	if f.Main != "" {
		spec.MainSource = f.Main
	}

	if f.Artifact != "" {
		spec.Artifact = f.Artifact
	}

	if f.Executable != "" {
		spec.Executable = f.Executable
	}

	switch f.Expect {
	case "":
	case "fail":
		spec.ExpectFinalFailure = true
	case "pass":
		spec.ExpectFinalFailure = false
	default:
		return fmt.Errorf("%q: %w", f.Expect, ErrExpectInvalid)
	}

	return nil
}
