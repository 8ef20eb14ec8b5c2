// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"io"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/cvd"
	"github.com/muesli/termenv"
)

// Render writes the table to w, one line per row: the color name, the
// simulated hex code, and the simulated rgb triple, drawn on the
// simulated color as background with the contrast foreground, using
// whatever level of ANSI color the output supports (see
// [termenv.WithProfile] to force a profile).
func (t *Table) Render(w io.Writer, opts ...termenv.OutputOption) error {
	out := termenv.NewOutput(w, opts...)
	for _, row := range t.Rows {
		hex := cvd.Hex(row.Sim)
		text := fmt.Sprintf(" %-22s %s  rgb(%3d,%3d,%3d) ",
			row.Name, hex, row.Sim.R, row.Sim.G, row.Sim.B)
		s := out.String(text).
			Background(out.Color(hex)).
			Foreground(out.Color(cvd.Hex(row.Fg)))
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

// jsonTable is the JSON export form of a [Table].
type jsonTable struct {
	Deficiency cvd.Deficiency `json:"deficiency"`
	Colors     []jsonRow      `json:"colors"`
}

type jsonRow struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	Sim  string `json:"sim"`
}

// WriteJSON writes the table to w as JSON, with each color's source
// and simulated hex codes.
func (t *Table) WriteJSON(w io.Writer) error {
	jt := jsonTable{Deficiency: t.Deficiency, Colors: make([]jsonRow, 0, len(t.Rows))}
	for _, row := range t.Rows {
		jt.Colors = append(jt.Colors, jsonRow{Name: row.Name, Hex: cvd.Hex(row.Color), Sim: cvd.Hex(row.Sim)})
	}
	return jsonx.Write(jt, w)
}
