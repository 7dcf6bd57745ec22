// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"fmt"
)

const (
	// Success is the exit code of a successful run.
	Success = 0

	// Failure is the exit code for any failure that does not carry its own
	// exit code, like a missing target executable.
	Failure = 1

	// Usage is the exit code for malformed command line flags.
	Usage = 2
)

// Error is an exit code that is considered an error.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("non-zero exit code: %d", e)
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit code as basic int type.
func (e Error) Code() int {
	return int(e)
}

// From returns an exit code based on the given error and if the error was an
// [Error].
//
// If the error is nil, the exit code is [Success]. If the error is an [Error]
// the exit code is the return value of [Error.Code]. Otherwise the exit code
// is [Failure].
func From(err error) (int, bool) {
	if err == nil {
		return Success, false
	}

	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code(), true
	}

	return Failure, false
}
