// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"slices"
)

const (
	// GCBoehm is the conservative Boehm collector.
	GCBoehm GC = "boehm"
	// GCSGen is the generational SGen collector. It is the only one that
	// honors the nursery size in MONO_GC_PARAMS.
	GCSGen GC = "sgen"
)

// GC is the garbage collector implementation the Mono runtime is started
// with.
type GC string

// GCs returns all known garbage collectors.
func GCs() []GC {
	return []GC{
		GCBoehm,
		GCSGen,
	}
}

func (g *GC) isKnown() bool {
	return slices.Contains(GCs(), *g)
}

// String implements [fmt.Stringer].
func (g *GC) String() string {
	if !g.isKnown() {
		return ""
	}

	return string(*g)
}

// MarshalText implements [encoding.TextMarshaler].
func (g GC) MarshalText() ([]byte, error) {
	s := g.String()
	if s == "" {
		return nil, ErrGCInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (g *GC) UnmarshalText(text []byte) error {
	gc := GC(text)

	if !gc.isKnown() {
		return ErrGCInvalid
	}

	*g = gc

	return nil
}

// Flag returns the runtime flag selecting the garbage collector.
func (g GC) Flag() string {
	return "--gc=" + string(g)
}
