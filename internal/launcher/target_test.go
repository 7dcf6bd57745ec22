// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/morpheus-ms/mono-morpheus/internal/launcher"
	"github.com/morpheus-ms/mono-morpheus/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetPath(t *testing.T) {
	for _, variant := range launcher.Variants() {
		t.Run(string(variant), func(t *testing.T) {
			expected := "/opt/morpheus/build/" + string(variant) + "/morpheus_cl.exe"
			actual := launcher.TargetPath("/opt/morpheus", variant)

			assert.Equal(t, expected, actual)
		})
	}
}

func TestResolveTarget(t *testing.T) {
	baseDir := t.TempDir()
	releaseTarget := launcher.WriteTarget(t, baseDir, launcher.VariantRelease)

	dirTarget := launcher.TargetPath(baseDir, launcher.VariantDebug)
	require.NoError(t, os.MkdirAll(dirTarget, 0o755))

	t.Run("exists", func(t *testing.T) {
		path, err := launcher.ResolveTarget(baseDir, launcher.VariantRelease)
		require.NoError(t, err)

		assert.Equal(t, releaseTarget, path)
	})

	t.Run("missing", func(t *testing.T) {
		otherDir := t.TempDir()

		_, err := launcher.ResolveTarget(otherDir, launcher.VariantRelease)
		require.ErrorIs(t, err, &launcher.TargetError{})
		require.ErrorIs(t, err, os.ErrNotExist)

		var targetErr *launcher.TargetError
		require.ErrorAs(t, err, &targetErr)
		assert.Equal(t,
			filepath.Join(otherDir, "build", "release", "morpheus_cl.exe"),
			targetErr.Path)
	})

	t.Run("not a regular file", func(t *testing.T) {
		_, err := launcher.ResolveTarget(baseDir, launcher.VariantDebug)
		require.ErrorIs(t, err, sys.ErrNotRegularFile)
	})

	t.Run("invalid variant", func(t *testing.T) {
		_, err := launcher.ResolveTarget(baseDir, launcher.Variant("../.."))
		require.ErrorIs(t, err, launcher.ErrVariantInvalid)
	})
}
