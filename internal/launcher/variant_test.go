// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher_test

import (
	"testing"

	"github.com/morpheus-ms/mono-morpheus/internal/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_MarshalText(t *testing.T) {
	tests := []struct {
		input       launcher.Variant
		expected    string
		expectedErr error
	}{
		{
			input:    launcher.VariantRelease,
			expected: "release",
		},
		{
			input:    launcher.VariantDebug,
			expected: "debug",
		},
		{
			input:       launcher.Variant("profile"),
			expectedErr: launcher.ErrVariantInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			actual, err := tt.input.MarshalText()
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, string(actual))
		})
	}
}

func TestVariant_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    launcher.Variant
		expectedErr error
	}{
		{
			input:    "release",
			expected: launcher.VariantRelease,
		},
		{
			input:    "debug",
			expected: launcher.VariantDebug,
		},
		{
			input:       "Release",
			expectedErr: launcher.ErrVariantInvalid,
		},
		{
			input:       "",
			expectedErr: launcher.ErrVariantInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var actual launcher.Variant

			err := actual.UnmarshalText([]byte(tt.input))
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}
