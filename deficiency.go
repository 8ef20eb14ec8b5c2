// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

//go:generate core generate

// Deficiency is a form of color vision deficiency that can be simulated.
type Deficiency int32 //enums:enum -transform lower

const (
	// None applies no simulation; colors pass through unchanged.
	None Deficiency = iota

	// Deuteranopia is the absence of the green (M) cone response,
	// the most common form of red-green color blindness.
	Deuteranopia

	// Protanopia is the absence of the red (L) cone response,
	// a form of red-green color blindness.
	Protanopia

	// Tritanopia is the absence of the blue (S) cone response,
	// a rare form of blue-yellow color blindness.
	Tritanopia

	// Grayscale discards the chromatic channels, keeping only luminance.
	Grayscale
)
