// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"slices"
)

const (
	// VariantRelease is the optimized build of morpheus_cl.exe.
	VariantRelease Variant = "release"
	// VariantDebug is the debug build of morpheus_cl.exe.
	VariantDebug Variant = "debug"
)

// Variant is the build variant of the target executable. It names the
// directory below "build" the executable is looked up in.
type Variant string

// Variants returns all known build variants.
func Variants() []Variant {
	return []Variant{
		VariantRelease,
		VariantDebug,
	}
}

func (v *Variant) isKnown() bool {
	return slices.Contains(Variants(), *v)
}

// String implements [fmt.Stringer].
func (v *Variant) String() string {
	if !v.isKnown() {
		return ""
	}

	return string(*v)
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	s := v.String()
	if s == "" {
		return nil, ErrVariantInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(text []byte) error {
	variant := Variant(text)

	if !variant.isKnown() {
		return ErrVariantInvalid
	}

	*v = variant

	return nil
}
