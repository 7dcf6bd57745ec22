// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"os"
	"path/filepath"
	"testing"
)

// runtimeStubScript stands in for the Mono runtime. It prints every argument
// on its own line prefixed with "arg=", then the value of MONO_GC_PARAMS.
//
// With STUB_SLEEP set it is replaced by sleep for that many seconds, ignoring
// SIGTERM if STUB_IGNORE_TERM is set as well. With STUB_SIGNAL set it kills
// itself with that signal. Otherwise it exits with STUB_EXIT_CODE.
const runtimeStubScript = `#!/bin/sh
for arg in "$@"; do
	echo "arg=$arg"
done
echo "MONO_GC_PARAMS=${MONO_GC_PARAMS-unset}"
if [ -n "$STUB_IGNORE_TERM" ]; then
	trap '' TERM
fi
if [ -n "$STUB_SLEEP" ]; then
	exec sleep "$STUB_SLEEP"
fi
if [ -n "$STUB_SIGNAL" ]; then
	kill -"$STUB_SIGNAL" $$
fi
exit "${STUB_EXIT_CODE:-0}"
`

// WriteRuntimeStub writes an executable runtime stub into dir and returns its
// path.
func WriteRuntimeStub(tb testing.TB, dir string) string {
	tb.Helper()

	path := filepath.Join(dir, "mono-stub")

	//nolint:gosec
	err := os.WriteFile(path, []byte(runtimeStubScript), 0o755)
	if err != nil {
		tb.Fatalf("failed to write runtime stub: %v", err)
	}

	return path
}

// WriteTarget creates an empty target executable for the given variant below
// baseDir and returns its path.
func WriteTarget(tb testing.TB, baseDir string, variant Variant) string {
	tb.Helper()

	path := TargetPath(baseDir, variant)

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		tb.Fatalf("failed to create build dir: %v", err)
	}

	err = os.WriteFile(path, nil, 0o600)
	if err != nil {
		tb.Fatalf("failed to write target: %v", err)
	}

	return path
}
