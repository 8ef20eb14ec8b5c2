// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// ContrastColor returns black or white, whichever reads better as text
// on the given background color, based on the perceived brightness
// metric from
// https://www.nbdtech.com/Blog/archive/2008/04/27/Calculating-the-Perceived-Brightness-of-a-Color.aspx
// The cutoff of 130 puts the black/white switch at about 51% gray.
func ContrastColor(c color.Color) color.RGBA {
	s := colors.AsRGBA(c)
	r, g, b := float32(s.R), float32(s.G), float32(s.B)
	pb := math32.Sqrt(0.241*r*r + 0.691*g*g + 0.068*b*b)
	if pb > 130 {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
