// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"errors"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/sys/unix"
)

// RelayedSignals are forwarded to the child while it is running. They are
// usually sent to the launcher's pid only, by kill or a supervisor.
var RelayedSignals = []os.Signal{
	unix.SIGTERM,
	unix.SIGHUP,
}

// terminalSignals are sent by the terminal to the whole foreground process
// group, so the child gets them itself. The launcher must survive them to
// report the child's exit status.
var terminalSignals = []os.Signal{
	unix.SIGINT,
	unix.SIGQUIT,
}

func caughtSignals() []os.Signal {
	return slices.Concat(RelayedSignals, terminalSignals)
}

type signaler interface {
	Signal(sig os.Signal) error
}

// relaySignals forwards [RelayedSignals] received on signals to proc until
// done is closed. Other signals are dropped.
func relaySignals(done <-chan struct{}, signals <-chan os.Signal, proc signaler) {
	for {
		select {
		case <-done:
			return
		case sig := <-signals:
			if !slices.Contains(RelayedSignals, sig) {
				slog.Debug("Leaving signal to child", slog.String("signal", sig.String()))
				continue
			}

			slog.Debug("Relaying signal", slog.String("signal", sig.String()))

			err := proc.Signal(sig)
			if err != nil && !errors.Is(err, os.ErrProcessDone) {
				slog.Warn("Failed to relay signal",
					slog.String("signal", sig.String()),
					slog.Any("error", err))
			}
		}
	}
}
