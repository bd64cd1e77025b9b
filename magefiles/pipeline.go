// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleDump is a small text dump used to smoke-test the CLI.
const sampleDump = "testdata/sample.txt"

// Sample builds the CLI and parses the sample dump, printing rows as YAML.
func Sample() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "parse", "--verbose", "--format", "yaml", "--preview", "2", sampleDump)
}

// Batch builds the CLI and parses every document in input/ into output/.
func Batch() error {
	mg.Deps(Build, Init)
	if err := sh.RunV(binPath, "batch", "input", "--out-dir", "output"); err != nil {
		return fmt.Errorf("batch run: %w", err)
	}
	return nil
}
