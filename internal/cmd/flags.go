// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/morpheus-ms/mono-morpheus/internal/launcher"
)

const (
	name = "mono-morpheus"

	usageMessage = `Usage of '%[1]s':
    %[1]s [flags...] morpheus-args...

Runs the command-line version of Morpheus, morpheus_cl.exe, under Mono, using
appropriate GC parameters by default. Arguments other than the flags listed
below are passed through to Morpheus. Use "--" to pass through everything
after it.

Example:
	%[1]s --gc_nursery_size=64m -d spectra.mzML -db proteome.fasta -o out

All %[1]s flags can also be provided via environment variable %[2]s:
	%[2]s="--build=debug --debug" %[1]s -d spectra.mzML

All %[1]s flags can also be provided via file ./%[3]s, with one
argument per line.
`
)

// Set on build.
var version = "dev"

type flags struct {
	spec    launcher.Spec
	variant launcher.Variant

	debug   bool
	dryRun  bool
	version bool

	flagSet *flag.FlagSet
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		spec:    launcher.DefaultSpec(),
		variant: launcher.VariantRelease,
	}

	flags.initFlagset(output)

	return flags
}

// ParseArgs parses the given arguments. Known flags may be anywhere, all other
// arguments are passed through to morpheus.
func (f *flags) ParseArgs(args []string) error {
	known, passthrough := splitArgs(f.flagSet, args)

	err := f.flagSet.Parse(known)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	// Running morpheus without any arguments is never intended. Print the
	// usage like for help, but fail.
	if len(passthrough) == 0 {
		f.flagSet.Usage()
		return &ParseArgsError{msg: "usage", err: ErrNoPassthroughArgs}
	}

	f.spec.Args = passthrough

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.TextVar(
		&f.variant,
		"build",
		f.variant,
		"build variant of morpheus_cl.exe to run: release, debug",
	)

	flagSet.StringVar(
		&f.spec.Runtime,
		"mono",
		f.spec.Runtime,
		"Mono executable",
	)

	flagSet.TextVar(
		&f.spec.GC,
		"gc",
		f.spec.GC,
		"Mono garbage collector to use: boehm, sgen",
	)

	flagSet.StringVar(
		&f.spec.GCParams,
		"gc_params",
		f.spec.GCParams,
		"parameters for Mono's garbage collector, set as "+
			launcher.GCParamsEnvVar+". "+launcher.NurserySizePlaceholder+
			" is replaced by --gc_nursery_size. Empty value leaves the "+
			"variable alone",
	)

	flagSet.StringVar(
		&f.spec.NurserySize,
		"gc_nursery_size",
		f.spec.NurserySize,
		"size of the GC nursery, the pool for small, recent objects that can "+
			"be collected in parallel. Set as large as possible without crashing",
	)

	flagSet.StringVar(
		&f.spec.Profile,
		"profile",
		f.spec.Profile,
		"Mono profiler options. If not given, don't profile",
	)

	flagSet.BoolVar(
		&f.dryRun,
		"dry_run",
		f.dryRun,
		"print the command instead of running it",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "%s: %s\n\n", name, version)
	fmt.Fprintln(f.flagSet.Output(), buildInfo.String())

	return ErrHelp
}

func (f *flags) usage() {
	output := f.flagSet.Output()

	fmt.Fprintf(output, usageMessage, name, argsEnvVar, localConfigFile)
	fmt.Fprintln(output, "\nFlags:")
	f.printDefaults()
}

// printDefaults prints the flags like [flag.FlagSet.PrintDefaults] does, but
// with the double dash prefix the flags are recognized with.
func (f *flags) printDefaults() {
	output := f.flagSet.Output()

	f.flagSet.VisitAll(func(fl *flag.Flag) {
		line := "  --" + fl.Name

		if !isBool(fl) {
			line += " value"
		}

		line += "\n    \t" + fl.Usage

		if fl.DefValue != "" && fl.DefValue != "false" {
			line += fmt.Sprintf(" (default %q)", fl.DefValue)
		}

		fmt.Fprintln(output, line)
	})
}
