// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cvd simulates how colors are perceived with color vision
// deficiencies: deuteranopia, protanopia, tritanopia, and grayscale
// (luminance-only) vision. Every transform is a pure function of the
// input color and the requested [Deficiency], so the package is safe
// for concurrent use without synchronization.
package cvd

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

var (
	// ErrChannel indicates an integer channel value outside of [0, 255].
	ErrChannel = errors.New("channel value out of range [0, 255]")

	// ErrDeficiency indicates an unrecognized [Deficiency] value.
	ErrDeficiency = errors.New("unrecognized deficiency")
)

// Simulate returns the given color as it is perceived with the given
// color vision deficiency. [None] returns the color unchanged. The
// result always has channels in [0, 255] (rounded to nearest, clamped)
// and preserves the alpha of the input. It returns an error wrapping
// [ErrDeficiency] if d is not a recognized [Deficiency] value; see
// [MustSimulate] for a version that does not return an error.
func Simulate(c color.Color, d Deficiency) (color.RGBA, error) {
	if d == None {
		return colors.AsRGBA(c), nil
	}
	m, err := MatrixFor(d)
	if err != nil {
		return color.RGBA{}, err
	}
	return SimulateMatrix(c, m), nil
}

// MustSimulate is a version of [Simulate] that panics instead of
// returning an error, for use with [Deficiency] values known to be valid.
func MustSimulate(c color.Color, d Deficiency) color.RGBA {
	s, err := Simulate(c, d)
	if err != nil {
		panic("cvd.MustSimulate: " + err.Error())
	}
	return s
}

// SimulateRGB simulates the color given by the three 8-bit channel
// values, which must be in [0, 255]; it returns an error wrapping
// [ErrChannel] otherwise. The deficiency value is checked per [Simulate].
func SimulateRGB(r, g, b int, d Deficiency) (color.RGBA, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %d", ErrChannel, v)
		}
	}
	return Simulate(color.RGBA{uint8(r), uint8(g), uint8(b), 255}, d)
}

// SimulateHex simulates the color given as a hex string (per
// [colors.FromHex]) and returns the result in #rrggbb form.
func SimulateHex(hex string, d Deficiency) (string, error) {
	c, err := colors.FromHex(hex)
	if err != nil {
		return "", err
	}
	s, err := Simulate(c, d)
	if err != nil {
		return "", err
	}
	return Hex(s), nil
}

// SimulateMatrix applies the given simulation [Matrix] to the color,
// for use with custom or substituted transform sets; [Simulate] is
// equivalent to this with the standard matrix from [MatrixFor].
// The matrix operates on the normalized (0-1) rgb triple; the result
// is converted back to 8-bit channels, rounded and clamped to [0, 255].
// Alpha passes through unchanged.
func SimulateMatrix(c color.Color, m Matrix) color.RGBA {
	s := colors.AsRGBA(c)
	r, g, b := m.Apply(float32(s.R)/255, float32(s.G)/255, float32(s.B)/255)
	return color.RGBA{comp(r), comp(g), comp(b), s.A}
}

// comp converts a normalized channel back to 8 bits.
func comp(v float32) uint8 {
	return uint8(math32.Clamp(math32.Round(v*255), 0, 255))
}

// Hex returns the color as a standard 6-hex-digit #rrggbb string,
// ignoring alpha; see [colors.AsHex] for an 8-digit version.
func Hex(c color.Color) string {
	s := colors.AsRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}
