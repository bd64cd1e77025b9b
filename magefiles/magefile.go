// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main contains Mage build targets for question-bank developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the batch target expects.
var projectDirs = []string{
	"input",
	"output",
}

// Init creates the project directory structure for batch runs.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "question-bank"
	cmdPkg  = "./cmd/question-bank"
)

// binPath is where Build writes the CLI binary.
var binPath = filepath.Join(binDir, binName)

// Build compiles the CLI binary into bin/. The VERSION environment variable,
// when set, is stamped into the binary.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints project metrics: non-blank Go lines split into production and
// test code, and words in Markdown docs.
func Stats() error {
	var st stats
	if err := filepath.WalkDir(".", st.visit); err != nil {
		return err
	}

	fmt.Printf("Go lines (production): %d in %d files\n", st.prodLines, st.prodFiles)
	fmt.Printf("Go lines (tests):      %d in %d files\n", st.testLines, st.testFiles)
	fmt.Printf("Markdown words:        %d\n", st.docWords)
	return nil
}

// stats accumulates the counters reported by Stats.
type stats struct {
	prodLines, prodFiles int
	testLines, testFiles int
	docWords             int
}

func (s *stats) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if d.IsDir() {
		if path != "." && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		return nil
	}

	switch {
	case strings.HasSuffix(path, "_test.go"):
		n, err := nonBlankLines(path)
		s.testLines += n
		s.testFiles++
		return err
	case strings.HasSuffix(path, ".go"):
		n, err := nonBlankLines(path)
		s.prodLines += n
		s.prodFiles++
		return err
	case strings.HasSuffix(path, ".md"):
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		s.docWords += len(bytes.Fields(data))
	}
	return nil
}

// skipDir reports whether the go tool ignores a directory: dot and
// underscore prefixed names and testdata.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata"
}

func nonBlankLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n, nil
}
