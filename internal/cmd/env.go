// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
)

const (
	argsEnvVar      = "MONO_MORPHEUS_ARGS"
	localConfigFile = ".mono-morpheus-args"
	commentPrefix   = "#"
)

// EnvArgs returns mono-morpheus arguments from the environment.
//
// The value is split into words like a POSIX shell does, so arguments may be
// quoted.
func EnvArgs() ([]string, error) {
	args, err := shellquote.Split(os.Getenv(argsEnvVar))
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", argsEnvVar, err)
	}

	return args, nil
}

// LocalConfigArgs returns mono-morpheus arguments from a local config file.
//
// The file's format is one argument per line. Lines starting with "#" are
// comments. Environment variables are expanded with [os.ExpandEnv]; lines that
// expand to nothing are skipped. A missing file is not an error.
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	args := []string{}

	for line := range strings.Lines(string(conf)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if arg := os.ExpandEnv(line); arg != "" {
			args = append(args, arg)
		}
	}

	return args, nil
}

// MergedArgs returns the arguments from the local config file, the
// environment and the given command line arguments, in this order. Flags given
// later take precedence.
func MergedArgs(args []string, fsys fs.FS, file string) ([]string, error) {
	fileArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("local config args: %w", err)
	}

	envArgs, err := EnvArgs()
	if err != nil {
		return nil, err
	}

	return slices.Concat(fileArgs, envArgs, args), nil
}
