// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"os"
	"syscall"
)

// signalOffset is added to the signal number of processes terminated by a
// signal, like shells do.
const signalOffset = 128

// FromSignal returns the exit code for a process terminated by the given
// signal.
func FromSignal(sig syscall.Signal) int {
	return signalOffset + int(sig)
}

// FromProcessState returns the exit code of a finished process.
//
// [os.ProcessState.ExitCode] reports -1 for processes killed by a signal. In
// that case the code is derived from the signal number with [FromSignal].
func FromProcessState(state *os.ProcessState) int {
	if state == nil {
		return Failure
	}

	status, ok := state.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return FromSignal(status.Signal())
	}

	code := state.ExitCode()
	if code < 0 {
		return Failure
	}

	return code
}
