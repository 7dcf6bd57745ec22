// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command mono-morpheus runs the command-line version of Morpheus,
// morpheus_cl.exe, under Mono, using appropriate GC parameters by default.
// Arguments other than its own flags are passed through to Morpheus.
//
// morpheus_cl.exe is looked up in build/<variant>/ next to the mono-morpheus
// executable. Run "mono-morpheus --help" for all flags.
package main

import (
	"context"
	"os"

	"github.com/morpheus-ms/mono-morpheus/internal/cmd"
)

func main() {
	cfg := cmd.Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	exitCode := cmd.Run(context.Background(), os.Args[1:], cfg)

	os.Exit(exitCode)
}
