// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixFor(t *testing.T) {
	for _, d := range DeficiencyValues() {
		m, err := MatrixFor(d)
		assert.NoError(t, err)
		// every row of every standard matrix sums to 1, so gray stays gray
		for ri, row := range m {
			sum := row[0] + row[1] + row[2]
			assert.InDelta(t, 1, sum, 1e-6, "%v row %d", d, ri)
		}
	}
	_, err := MatrixFor(Deficiency(17))
	assert.ErrorIs(t, err, ErrDeficiency)
}

func TestMatrixApply(t *testing.T) {
	r, g, b := IdentityMatrix.Apply(0.25, 0.5, 0.75)
	assert.Equal(t, float32(0.25), r)
	assert.Equal(t, float32(0.5), g)
	assert.Equal(t, float32(0.75), b)

	// the zero vector maps to the zero vector under any linear matrix
	for _, m := range []Matrix{DeutanMatrix, ProtanMatrix, TritanMatrix, GrayscaleMatrix} {
		r, g, b = m.Apply(0, 0, 0)
		assert.Equal(t, float32(0), r)
		assert.Equal(t, float32(0), g)
		assert.Equal(t, float32(0), b)
	}
}

func TestSimulateMatrixClamp(t *testing.T) {
	// out-of-gamut coefficients must clamp to the channel range
	over := Matrix{{2, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	s := SimulateMatrix(color.RGBA{200, 200, 200, 255}, over)
	assert.Equal(t, color.RGBA{255, 0, 200, 255}, s)
}

func TestSimulateMatrixAlpha(t *testing.T) {
	s := SimulateMatrix(color.RGBA{10, 20, 30, 128}, IdentityMatrix)
	assert.Equal(t, uint8(128), s.A)
}
