// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"path/filepath"

	"github.com/morpheus-ms/mono-morpheus/internal/sys"
)

const (
	// TargetName is the file name of the target executable.
	TargetName = "morpheus_cl.exe"

	// BuildDir is the directory the build variants are located in, relative
	// to the launcher's base directory.
	BuildDir = "build"
)

// TargetPath returns the path of the target executable for the given build
// variant below baseDir. It does not check the file system.
func TargetPath(baseDir string, variant Variant) string {
	return filepath.Join(baseDir, BuildDir, string(variant), TargetName)
}

// ResolveTarget returns the path of the target executable for the given build
// variant below baseDir.
//
// It returns a [*TargetError] if the file does not exist or is not a regular
// file. The error wraps the cause, so errors.Is(err, os.ErrNotExist) reports
// a missing build.
func ResolveTarget(baseDir string, variant Variant) (string, error) {
	if _, err := variant.MarshalText(); err != nil {
		return "", err
	}

	path := TargetPath(baseDir, variant)

	err := sys.ValidateFilePath(path)
	if err != nil {
		return "", &TargetError{Path: path, Err: err}
	}

	return path, nil
}
