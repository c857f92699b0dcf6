//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/ianwitherow/eslint-friendly-formatter"
	binaryPath = "bin/eff"
)

// Default target - build the binary
var Default = Build

// Build builds the eff binary with version metadata baked in
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	ldflags := fmt.Sprintf(
		"-X %[1]s/internal/version.Version=%[2]s -X %[1]s/internal/version.CommitHash=%[3]s -X %[1]s/internal/version.BuildDate=%[4]s",
		modulePath, version, commit, date)

	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binaryPath, "./cmd/eff")
}

// Install installs the eff binary into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/eff")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

// QA runs format check, vet, staticcheck, tests, and a full build
func QA() error {
	fmt.Println("Running QA checks...")

	if err := sh.RunV("go", "fmt", "./..."); err != nil {
		return fmt.Errorf("format check failed: %w", err)
	}

	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}

	if err := sh.RunV("staticcheck", "./..."); err != nil {
		if !sh.CmdRan(err) {
			fmt.Fprintln(os.Stderr, "Staticcheck not found (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
		} else {
			return fmt.Errorf("staticcheck failed: %w", err)
		}
	}

	if err := sh.RunV("go", "test", "./..."); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}

	if err := sh.RunV("go", "build", "./..."); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Println("QA complete!")
	return nil
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Format checks code formatting
func (Lint) Format() error {
	return sh.RunV("gofmt", "-l", ".")
}

// Staticcheck runs staticcheck
func (Lint) Staticcheck() error {
	return sh.RunV("staticcheck", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Race runs tests with the race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}
