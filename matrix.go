// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import "fmt"

// Matrix is a 3x3 row-major linear transform applied to a normalized
// (0-1) rgb triple to produce the simulated rgb triple. The matrices
// for each [Deficiency] are exported package variables, so a different
// published transform set can be substituted via [SimulateMatrix].
type Matrix [3][3]float32

// Apply multiplies the matrix by the given normalized rgb triple,
// returning the resulting triple. Results are not clamped; callers
// converting back to 8-bit channels are responsible for that.
func (m Matrix) Apply(r, g, b float32) (float32, float32, float32) {
	rr := m[0][0]*r + m[0][1]*g + m[0][2]*b
	gg := m[1][0]*r + m[1][1]*g + m[1][2]*b
	bb := m[2][0]*r + m[2][1]*g + m[2][2]*b
	return rr, gg, bb
}

// The deficiency simulation matrices are the RGB-space summaries of the
// LMS-D65 photoreceptor-loss transforms published at
// http://mkweb.bcgsc.ca/colorblind/math.mhtml
var (
	// IdentityMatrix leaves colors unchanged.
	IdentityMatrix = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	// DeutanMatrix simulates deuteranopia (missing M cone).
	DeutanMatrix = Matrix{
		{0.33066007, 0.66933993, 0},
		{0.33066007, 0.66933993, 0},
		{-0.02785538, 0.02785538, 1},
	}

	// ProtanMatrix simulates protanopia (missing L cone).
	ProtanMatrix = Matrix{
		{0.170556992, 0.829443014, 0},
		{0.170556991, 0.829443008, 0},
		{-0.004517144, 0.004517144, 1},
	}

	// TritanMatrix simulates tritanopia (missing S cone).
	TritanMatrix = Matrix{
		{1, 0.1273989, -0.1273989},
		{0, 0.8739093, 0.1260907},
		{0, 0.8739093, 0.1260907},
	}

	// GrayscaleMatrix sets every channel to the ITU-R BT.601 luminance
	// of the color.
	GrayscaleMatrix = Matrix{
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	}
)

// MatrixFor returns the standard simulation matrix for the given
// [Deficiency] ([IdentityMatrix] for [None]). It returns an error
// wrapping [ErrDeficiency] for unrecognized values.
func MatrixFor(d Deficiency) (Matrix, error) {
	switch d {
	case None:
		return IdentityMatrix, nil
	case Deuteranopia:
		return DeutanMatrix, nil
	case Protanopia:
		return ProtanMatrix, nil
	case Tritanopia:
		return TritanMatrix, nil
	case Grayscale:
		return GrayscaleMatrix, nil
	}
	return Matrix{}, fmt.Errorf("%w: %d", ErrDeficiency, int64(d))
}
