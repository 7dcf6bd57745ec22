// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"strings"
)

const (
	// DefaultRuntime is the Mono binary used if none is given.
	DefaultRuntime = "mono-sgen"

	// DefaultGC is the garbage collector used if none is given.
	DefaultGC = GCSGen

	// NurserySizePlaceholder is replaced in the GC parameter template by the
	// nursery size.
	NurserySizePlaceholder = "{nursery_size}"

	// DefaultGCParams is the default GC parameter template. It selects the
	// concurrent mark and sweep major collector and the split nursery.
	DefaultGCParams = "major=marksweep-conc,minor=split,nursery-size=" +
		NurserySizePlaceholder

	// DefaultNurserySize is the nursery size used if none is given.
	DefaultNurserySize = "32m"

	// GCParamsEnvVar is the environment variable Mono reads GC tuning
	// parameters from.
	GCParamsEnvVar = "MONO_GC_PARAMS"
)

// Spec describes a single invocation of the target executable under the Mono
// runtime.
type Spec struct {
	// Runtime is the Mono binary. It is looked up in PATH if it does not
	// contain a path separator.
	Runtime string

	// GC is the garbage collector passed to the runtime with "--gc".
	GC GC

	// Profile holds profiler options passed with "--profile". The flag is
	// omitted if empty.
	Profile string

	// Target is the path of the executable the runtime runs.
	Target string

	// Args are passed to the target as they are.
	Args []string

	// GCParams is the template for [GCParamsEnvVar]. All occurrences of
	// [NurserySizePlaceholder] are replaced by NurserySize. If empty, the
	// variable is not set.
	GCParams string

	// NurserySize is the value for [NurserySizePlaceholder].
	NurserySize string
}

// DefaultSpec returns a [Spec] with all defaults set. Target and Args are
// empty.
func DefaultSpec() Spec {
	return Spec{
		Runtime:     DefaultRuntime,
		GC:          DefaultGC,
		GCParams:    DefaultGCParams,
		NurserySize: DefaultNurserySize,
	}
}

// Validate checks the spec is complete.
func (s *Spec) Validate() error {
	if s.Runtime == "" {
		return ErrRuntimeEmpty
	}

	if _, err := s.GC.MarshalText(); err != nil {
		return err
	}

	if s.Target == "" {
		return ErrTargetEmpty
	}

	return nil
}

// CommandLine returns the full command line including the runtime binary:
//
//	runtime --gc=<gc> [--profile=<profile>] target [args...]
func (s *Spec) CommandLine() []string {
	cmdline := make([]string, 0, 4+len(s.Args))

	cmdline = append(cmdline, s.Runtime, s.GC.Flag())

	if s.Profile != "" {
		cmdline = append(cmdline, "--profile="+s.Profile)
	}

	cmdline = append(cmdline, s.Target)
	cmdline = append(cmdline, s.Args...)

	return cmdline
}

// GCParamsValue returns the value for [GCParamsEnvVar] and whether it should
// be set at all.
func (s *Spec) GCParamsValue() (string, bool) {
	if s.GCParams == "" {
		return "", false
	}

	return strings.ReplaceAll(s.GCParams, NurserySizePlaceholder, s.NurserySize), true
}

// Environ returns a copy of base with [GCParamsEnvVar] set as returned by
// [Spec.GCParamsValue]. Existing entries of the variable are replaced. If the
// variable is not to be set, the copy is returned unchanged.
func (s *Spec) Environ(base []string) []string {
	env := make([]string, 0, len(base)+1)

	value, set := s.GCParamsValue()
	prefix := GCParamsEnvVar + "="

	for _, entry := range base {
		if set && strings.HasPrefix(entry, prefix) {
			continue
		}

		env = append(env, entry)
	}

	if set {
		env = append(env, prefix+value)
	}

	return env
}
