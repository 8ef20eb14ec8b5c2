// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table builds and renders tables of named colors with their
// color-vision-deficiency simulated equivalents, for displaying in a
// terminal or exporting. The named-color list itself comes from
// [golang.org/x/image/colornames] (or any name to color map); this
// package only consumes it.
package table

import (
	"cmp"
	"image/color"
	"slices"

	"cogentcore.org/cvd"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Row is one named color in a [Table]: the source color, its simulated
// equivalent, and the foreground (black or white) that reads best on the
// simulated color.
type Row struct {
	Name  string
	Color color.RGBA
	Sim   color.RGBA
	Fg    color.RGBA
}

// Table is a list of named colors simulated for one [cvd.Deficiency],
// sorted by name until one of the Sort methods reorders it.
type Table struct {
	Deficiency cvd.Deficiency
	Rows       []Row
}

// All returns the [Table] of all CSS named colors from
// [colornames.Names], simulated with the standard matrix for the
// given deficiency.
func All(d cvd.Deficiency) (*Table, error) {
	m, err := cvd.MatrixFor(d)
	if err != nil {
		return nil, err
	}
	return build(colornames.Names, colornames.Map, d, m), nil
}

// AllMatrix is a version of [All] that uses the given simulation
// matrix in place of the standard one for the deficiency.
func AllMatrix(d cvd.Deficiency, m cvd.Matrix) *Table {
	return build(colornames.Names, colornames.Map, d, m)
}

// FromMap returns the [Table] of the colors in the given name to color
// map, sorted by name, simulated with the standard matrix for the
// given deficiency.
func FromMap(cm map[string]color.RGBA, d cvd.Deficiency) (*Table, error) {
	m, err := cvd.MatrixFor(d)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cm))
	for nm := range cm {
		names = append(names, nm)
	}
	slices.Sort(names)
	return build(names, cm, d, m), nil
}

func build(names []string, cm map[string]color.RGBA, d cvd.Deficiency, m cvd.Matrix) *Table {
	t := &Table{Deficiency: d, Rows: make([]Row, 0, len(names))}
	for _, nm := range names {
		c := cm[nm]
		sim := cvd.SimulateMatrix(c, m)
		t.Rows = append(t.Rows, Row{Name: nm, Color: c, Sim: sim, Fg: cvd.ContrastColor(sim)})
	}
	return t
}

// SortByName sorts the rows alphabetically by color name.
func (t *Table) SortByName() {
	slices.SortStableFunc(t.Rows, func(a, b Row) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// SortByHue sorts the rows by the hue of the source color, so that
// related colors end up adjacent even after simulation collapses them.
func (t *Table) SortByHue() {
	slices.SortStableFunc(t.Rows, func(a, b Row) int {
		return cmp.Compare(hue(a.Color), hue(b.Color))
	})
}

func hue(c color.RGBA) float64 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	h, _, _ := cf.Hsv()
	return h
}
