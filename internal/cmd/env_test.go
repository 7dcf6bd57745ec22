// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/morpheus-ms/mono-morpheus/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvArgs(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		output      []string
		expectedErr bool
	}{
		{
			name:   "empty",
			env:    "",
			output: []string{},
		},
		{
			name:   "multiple args",
			env:    "--gc boehm --debug",
			output: []string{"--gc", "boehm", "--debug"},
		},
		{
			name:   "quoted",
			env:    `--profile='log:calls,output=/tmp/my profile.mlpd' "--mono=/opt/mono 6/bin/mono"`,
			output: []string{"--profile=log:calls,output=/tmp/my profile.mlpd", "--mono=/opt/mono 6/bin/mono"},
		},
		{
			name:        "unterminated quote",
			env:         `--profile='log`,
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MONO_MORPHEUS_ARGS", tt.env)

			actual, err := cmd.EnvArgs()
			if tt.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			assert.ElementsMatch(t, tt.output, actual)
			assert.Len(t, actual, len(tt.output))
		})
	}
}

func TestLocalConfigArgs(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		expected []string
	}{
		{
			name:     "empty",
			content:  "",
			expected: []string{},
		},
		{
			name:     "single line",
			content:  "--gc=boehm\n--profile=log:calls",
			expected: []string{"--gc=boehm", "--profile=log:calls"},
		},
		{
			name:     "multiple lines",
			content:  "--build\ndebug\n--gc_nursery_size\n64m\n",
			expected: []string{"--build", "debug", "--gc_nursery_size", "64m"},
		},
		{
			name:     "with env vars",
			content:  "--mono=${MONO_PREFIX}/bin/mono\n--gc_nursery_size=$NURSERY\n",
			env:      map[string]string{"MONO_PREFIX": "/opt/mono", "NURSERY": "128m"},
			expected: []string{"--mono=/opt/mono/bin/mono", "--gc_nursery_size=128m"},
		},
		{
			name:     "comments",
			content:  "# local defaults\n--gc=boehm\n  # --build=debug\n",
			expected: []string{"--gc=boehm"},
		},
		{
			name:     "unset env var",
			content:  "$MONO_MORPHEUS_UNSET\n--gc=boehm\n",
			env:      map[string]string{"MONO_MORPHEUS_UNSET": ""},
			expected: []string{"--gc=boehm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFS := fstest.MapFS{
				"conf": &fstest.MapFile{
					Data: []byte(tt.content),
				},
			}

			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			content, err := cmd.LocalConfigArgs(testFS, "conf")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, content)
		})
	}
}

func TestLocalConfigArgs_Missing(t *testing.T) {
	content, err := cmd.LocalConfigArgs(fstest.MapFS{}, "conf")
	require.NoError(t, err)

	assert.Empty(t, content)
}

func TestMergedArgs(t *testing.T) {
	t.Setenv("MONO_MORPHEUS_ARGS", "--gc=boehm")

	testFS := fstest.MapFS{
		"conf": &fstest.MapFile{
			Data: []byte("--build=debug\n"),
		},
	}

	actual, err := cmd.MergedArgs([]string{"--gc=sgen", "-d", "a.mzML"}, testFS, "conf")
	require.NoError(t, err)

	expected := []string{"--build=debug", "--gc=boehm", "--gc=sgen", "-d", "a.mzML"}
	assert.Equal(t, expected, actual)
}
