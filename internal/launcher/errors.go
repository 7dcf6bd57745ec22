// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"errors"
)

var (
	// ErrVariantInvalid is returned if a build variant is unknown.
	ErrVariantInvalid = errors.New("unknown build variant")

	// ErrGCInvalid is returned if a garbage collector is unknown.
	ErrGCInvalid = errors.New("unknown garbage collector")

	// ErrRuntimeEmpty is returned if no runtime binary is given.
	ErrRuntimeEmpty = errors.New("runtime binary must not be empty")

	// ErrTargetEmpty is returned if no target executable is given.
	ErrTargetEmpty = errors.New("target executable must not be empty")
)

// TargetError indicates the target executable is not usable.
type TargetError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *TargetError) Error() string {
	return "target " + e.Path + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*TargetError) Is(other error) bool {
	_, ok := other.(*TargetError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *TargetError) Unwrap() error {
	return e.Err
}

// CommandError wraps any error occurred during [Command] execution.
//
// If the command was started and exited non-zero, Err is an
// [exitcode.Error] and ExitCode is set accordingly.
type CommandError struct {
	Err      error
	Started  bool
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	scope := "start"
	if e.Started {
		scope = "run"
	}

	return scope + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
