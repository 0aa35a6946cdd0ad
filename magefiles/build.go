// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the breadcrumbs binary to bin/ with reproducible paths.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-trimpath", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts and the coverage profile.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean", "-testcache")
}

// Install builds and copies the binary to GOBIN, or GOPATH/bin when GOBIN
// is unset.
func Install() error {
	mg.Deps(Build)
	dir, err := installDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return sh.Copy(filepath.Join(dir, binaryName), filepath.Join(binaryDir, binaryName))
}

func installDir() (string, error) {
	gobin, err := sh.Output(binGo, "env", "GOBIN")
	if err != nil {
		return "", err
	}
	if gobin = strings.TrimSpace(gobin); gobin != "" {
		return gobin, nil
	}
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return "", err
	}
	// GOPATH may list several entries; the first one receives binaries.
	first := strings.Split(strings.TrimSpace(gopath), string(os.PathListSeparator))[0]
	return filepath.Join(first, "bin"), nil
}
