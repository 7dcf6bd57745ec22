// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const pkg = "github.com/morpheus-ms/mono-morpheus/cmd/mono-morpheus"

var env map[string]string

func init() {
	env = make(map[string]string)

	gobin, exists := os.LookupEnv("GOBIN")
	if !exists {
		gobin = "./gobin"
	}

	if gobin != "" {
		p, err := filepath.Abs(gobin)
		if err == nil {
			gobin = p
		}
	}

	env["GOBIN"] = gobin
}

// Install mono-morpheus to gobin directory.
func Install() error {
	path := filepath.Join(env["GOBIN"], "mono-morpheus")

	mod, err := target.Dir(path, "cmd", "internal")
	if err != nil {
		return err
	}

	if !mod {
		return nil
	}

	return sh.RunWithV(env, "go", "install", pkg)
}

// Place mono-morpheus next to a Morpheus checkout, so it finds
// build/<variant>/morpheus_cl.exe.
func Deploy(morpheusDir string) error {
	mg.Deps(Install)

	return sh.RunV(
		"install", "-m", "0755",
		filepath.Join(env["GOBIN"], "mono-morpheus"),
		filepath.Join(morpheusDir, "mono-morpheus"),
	)
}

// Run all tests with coverage.
func Test() error {
	return sh.RunV(
		"go", "test",
		"-timeout", "2m",
		"-cover",
		"-coverprofile", "/tmp/cover.out",
		"./...",
	)
}

// Remove volatile files.
func Clean() error {
	return sh.Rm(env["GOBIN"])
}
