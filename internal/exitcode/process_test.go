// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode_test

import (
	"os/exec"
	"syscall"
	"testing"

	"github.com/morpheus-ms/mono-morpheus/internal/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSignal(t *testing.T) {
	assert.Equal(t, 130, exitcode.FromSignal(syscall.SIGINT))
	assert.Equal(t, 143, exitcode.FromSignal(syscall.SIGTERM))
}

func TestFromProcessState(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected int
	}{
		{
			name:     "success",
			script:   "exit 0",
			expected: 0,
		},
		{
			name:     "non-zero",
			script:   "exit 2",
			expected: 2,
		},
		{
			name:     "killed by signal",
			script:   "kill -TERM $$",
			expected: 143,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command("/bin/sh", "-c", tt.script)
			_ = cmd.Run()
			require.NotNil(t, cmd.ProcessState)

			assert.Equal(t, tt.expected, exitcode.FromProcessState(cmd.ProcessState))
		})
	}
}

func TestFromProcessState_Nil(t *testing.T) {
	assert.Equal(t, exitcode.Failure, exitcode.FromProcessState(nil))
}
