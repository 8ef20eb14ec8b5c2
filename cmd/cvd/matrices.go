// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/cvd"
	"github.com/pelletier/go-toml/v2"
)

// matrixFile is the TOML schema for custom simulation matrices:
// one table per deficiency name, each with a rows key holding the
// 3x3 row-major matrix, e.g.
//
//	[deuteranopia]
//	rows = [[0.33, 0.67, 0.0], [0.33, 0.67, 0.0], [-0.03, 0.03, 1.0]]
type matrixFile map[string]struct {
	Rows [3][3]float32 `toml:"rows"`
}

// loadMatrices reads custom simulation matrices from the given TOML
// file, keyed by deficiency name. Names that are not a valid
// [cvd.Deficiency] are rejected.
func loadMatrices(filename string) (map[cvd.Deficiency]cvd.Matrix, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var mf matrixFile
	if err := toml.Unmarshal(b, &mf); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	ms := make(map[cvd.Deficiency]cvd.Matrix, len(mf))
	for name, m := range mf {
		var d cvd.Deficiency
		if err := d.SetString(name); err != nil {
			return nil, fmt.Errorf("%s: %w: %s", filename, cvd.ErrDeficiency, name)
		}
		ms[d] = cvd.Matrix(m.Rows)
	}
	return ms, nil
}
