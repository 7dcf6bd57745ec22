// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/morpheus-ms/mono-morpheus/internal/exitcode"
	"github.com/morpheus-ms/mono-morpheus/internal/launcher"
	"github.com/morpheus-ms/mono-morpheus/internal/sys"
)

// Config provides input, output and environment details for the command.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// BaseDir is the directory the build directory is looked up in. Relative
	// paths are resolved against the working directory. If empty, the
	// directory of the running executable is used.
	BaseDir string

	// Environ is the environment the child's environment is derived from. If
	// nil, [os.Environ] is used.
	Environ []string
}

func (c *Config) baseDir() (string, error) {
	if c.BaseDir == "" {
		return sys.ExecutableDir()
	}

	return sys.AbsolutePath(c.BaseDir)
}

func (c *Config) environ() []string {
	if c.Environ != nil {
		return c.Environ
	}

	return os.Environ()
}

func parseFlags(args []string, cfg Config) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.ParseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func newCommand(flags *flags, cfg Config) (*launcher.Command, error) {
	baseDir, err := cfg.baseDir()
	if err != nil {
		return nil, fmt.Errorf("base dir: %w", err)
	}

	target, err := launcher.ResolveTarget(baseDir, flags.variant)
	if err != nil {
		return nil, err
	}

	slog.Debug("Resolved target", slog.String("path", target))

	spec := flags.spec
	spec.Target = target

	cmd, err := launcher.NewCommand(spec, cfg.environ())
	if err != nil {
		return nil, fmt.Errorf("new command: %w", err)
	}

	return cmd, nil
}

func run(ctx context.Context, flags *flags, cfg Config) error {
	cmd, err := newCommand(flags, cfg)
	if err != nil {
		return err
	}

	slog.Debug("Morpheus command", slog.String("command", cmd.String()))

	if flags.dryRun {
		_, err := fmt.Fprintln(cfg.Stdout, cmd.String())
		return err //nolint:wrapcheck
	}

	err = cmd.Run(ctx, cfg.Stdin, cfg.Stdout, cfg.Stderr)
	if err != nil {
		return fmt.Errorf("mono: %w", err)
	}

	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error [%s]: %v\n", name, err)
}

func handleParseArgsError(err error, stderr io.Writer) int {
	switch {
	// [ErrHelp] is returned when help or version is requested. So exit
	// without error in this case.
	case errors.Is(err, ErrHelp):
		return exitcode.Success
	// Usage has been printed already.
	case errors.Is(err, ErrNoPassthroughArgs):
		return exitcode.Failure
	case errors.Is(err, ErrReadBuildInfo):
		printError(stderr, err)
		return exitcode.Failure
	// The flag set already printed the error along with the usage.
	case errors.Is(err, &ParseArgsError{}):
		return exitcode.Usage
	default:
		printError(stderr, err)
		return exitcode.Failure
	}
}

func handleRunError(err error, stderr io.Writer) int {
	var targetErr *launcher.TargetError
	if errors.As(err, &targetErr) && errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr,
			"The morpheus command, %s, does not exist. "+
				"Have you built morpheus yet?\n",
			targetErr.Path,
		)

		return exitcode.Failure
	}

	var cmdErr *launcher.CommandError
	if errors.As(err, &cmdErr) {
		// Do not print the error in case morpheus ran and exited non-zero.
		// It is supposed to have told about it already.
		if !errors.Is(err, exitcode.Error(0)) {
			printError(stderr, err)
		}

		return cmdErr.ExitCode
	}

	printError(stderr, err)

	code, _ := exitcode.From(err)

	return code
}

// Run is the main entry point for the CLI command. The given args must not
// include the program name. It returns the exit code.
func Run(ctx context.Context, args []string, cfg Config) int {
	setupLogging(cfg.Stderr, false)

	flags, err := parseFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err, cfg.Stderr)
	}

	setupLogging(cfg.Stderr, flags.debug)

	slog.Debug("Passthrough arguments", slog.Any("args", flags.spec.Args))

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	return exitcode.Success
}
