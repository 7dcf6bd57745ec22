// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/morpheus-ms/mono-morpheus/internal/exitcode"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

// WaitDelay is the grace period for the child after it has been sent SIGTERM
// on context cancellation. It is killed after that.
const WaitDelay = 5 * time.Second

// Command is a single Mono invocation that can be run.
type Command struct {
	args     []string
	env      []string
	gcParams string
}

// NewCommand creates a new [Command] from the given [Spec]. The child's
// environment is derived from environ as described for [Spec.Environ].
func NewCommand(spec Spec, environ []string) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	gcParams, _ := spec.GCParamsValue()

	cmd := &Command{
		args:     spec.CommandLine(),
		env:      spec.Environ(environ),
		gcParams: gcParams,
	}

	return cmd, nil
}

// Args returns the full command line including the runtime binary.
func (c *Command) Args() []string {
	return c.args
}

// Env returns the environment the child is started with.
func (c *Command) Env() []string {
	return c.env
}

// String returns the command line quoted for a POSIX shell. If
// [GCParamsEnvVar] is set by the command, the assignment is prepended.
func (c *Command) String() string {
	words := c.args

	if c.gcParams != "" {
		words = append([]string{GCParamsEnvVar + "=" + c.gcParams}, c.args...)
	}

	return shellquote.Join(words...)
}

// Run runs the command and waits for it to finish.
//
// The child's standard streams are connected to the given ones. If they are
// [*os.File]s, the child inherits them directly. While the child is running,
// termination signals the launcher receives are relayed to it (see
// [RelayedSignals]). If ctx is done, the child is sent SIGTERM and is killed
// after [WaitDelay].
//
// If the command cannot be started or the child exits non-zero, a
// [*CommandError] is returned. For non-zero exits it wraps an
// [exitcode.Error] carrying the child's exit code.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.args[0], c.args[1:]...)
	cmd.Env = c.env
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGTERM)
	}
	cmd.WaitDelay = WaitDelay

	// Register before start, so no signal is lost between start and relay.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, caughtSignals()...)

	defer signal.Stop(signals)

	err := cmd.Start()
	if err != nil {
		return &CommandError{Err: err, ExitCode: exitcode.Failure}
	}

	slog.Debug("Started child", slog.Int("pid", cmd.Process.Pid))

	var (
		done  = make(chan struct{})
		group errgroup.Group
	)

	group.Go(func() error {
		defer close(done)
		return cmd.Wait()
	})

	group.Go(func() error {
		relaySignals(done, signals, cmd.Process)
		return nil
	})

	err = group.Wait()
	if err != nil {
		return newRunError(err)
	}

	slog.Debug("Child exited", slog.Int("exit_code", exitcode.Success))

	return nil
}

func newRunError(err error) *CommandError {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return &CommandError{
			Err:      err,
			Started:  true,
			ExitCode: exitcode.Failure,
		}
	}

	code := exitcode.FromProcessState(exitErr.ProcessState)

	slog.Debug("Child exited",
		slog.Int("exit_code", code),
		slog.String("state", exitErr.ProcessState.String()))

	return &CommandError{
		Err:      exitcode.Error(code),
		Started:  true,
		ExitCode: code,
	}
}
