// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"strings"
)

const argsTerminator = "--"

type boolFlag interface {
	IsBoolFlag() bool
}

// splitArgs separates the arguments for the given [flag.FlagSet] from those
// passed through to morpheus.
//
// Only flags with double dash prefix ("--name" and "--name=value") that are
// defined in the flag set are considered known. For non-bool flags given
// without "=", the next argument is taken as value. Known flags are returned
// in "--name=value" form. The help flags "-h", "-help" and "--help" are
// always known. A "--" argument stops the search. It is passed through along
// with everything after it, since morpheus may have a use for it. Any other
// argument is passed through as it is, order preserved.
func splitArgs(flagSet *flag.FlagSet, args []string) ([]string, []string) {
	var known, passthrough []string

	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]

		if arg == argsTerminator {
			passthrough = append(passthrough, args[idx:]...)
			break
		}

		name, hasValue, ok := flagName(arg)
		if !ok {
			passthrough = append(passthrough, arg)
			continue
		}

		fl := flagSet.Lookup(name)

		switch {
		case fl == nil && isHelpFlag(name):
			known = append(known, arg)
		case fl == nil:
			passthrough = append(passthrough, arg)
		case hasValue || isBool(fl):
			known = append(known, arg)
		case idx+1 < len(args):
			idx++
			known = append(known, argsTerminator+name+"="+args[idx])
		default:
			// Value is missing. Leave it to the flag set to complain.
			known = append(known, arg)
		}
	}

	return known, passthrough
}

// flagName returns the name of a flag argument and whether it has an inline
// value. ok is false if the argument is not a flag we may own.
func flagName(arg string) (name string, hasValue bool, ok bool) {
	switch arg {
	case "-h", "-help":
		return arg[1:], false, true
	}

	rest, found := strings.CutPrefix(arg, argsTerminator)
	if !found || rest == "" || rest[0] == '-' || rest[0] == '=' {
		return "", false, false
	}

	name, _, hasValue = strings.Cut(rest, "=")

	return name, hasValue, true
}

func isHelpFlag(name string) bool {
	return name == "h" || name == "help"
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(boolFlag)
	return ok && b.IsBoolFlag()
}
