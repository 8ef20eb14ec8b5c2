// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContrastColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	assert.Equal(t, white, ContrastColor(black))
	assert.Equal(t, black, ContrastColor(white))

	// the cutoff falls between 51% gray and 52% gray
	assert.Equal(t, white, ContrastColor(color.RGBA{130, 130, 130, 255}))
	assert.Equal(t, black, ContrastColor(color.RGBA{133, 133, 133, 255}))

	// saturated green is perceptually bright, saturated blue is not
	assert.Equal(t, black, ContrastColor(color.RGBA{0, 255, 0, 255}))
	assert.Equal(t, white, ContrastColor(color.RGBA{0, 0, 255, 255}))
}
