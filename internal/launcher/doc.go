// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package launcher locates a pre-built morpheus_cl.exe and runs it under the
// Mono runtime.
//
// A [Spec] describes a single invocation: runtime binary, garbage collector,
// optional profiler options, target executable and the arguments passed
// through to it. [Spec.CommandLine] and [Spec.Environ] assemble the command
// line and the environment. [Command] runs it and reports the child's exit
// status as [exitcode.Error].
package launcher
