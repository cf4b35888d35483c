//go:build mage

// Package main contains mage build targets for the pokedex module.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "pokedex"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pokedex"
)

// Build compiles the pokedex binary into bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", binaryDir, err)
	}
	out := filepath.Join(binaryDir, binaryName)
	return sh.RunV("go", "build", "-o", out, cmdDir)
}

// Test runs all tests with race detection.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}

// Install builds and installs the binary into GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", cmdDir)
}

// All runs lint, tests, and build in order.
func All() {
	mg.SerialDeps(Lint, Test, Build)
}
