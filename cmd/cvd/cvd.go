// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cvd renders the table of CSS named colors as they are
// perceived with a color vision deficiency, or simulates a single
// hex color.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/cvd"
	"cogentcore.org/cvd/table"
	"github.com/spf13/cobra"
)

func main() {
	if errors.Log(newCommand().Execute()) != nil {
		os.Exit(1)
	}
}

type flags struct {
	deficiency string
	hex        string
	sortBy     string
	json       bool
	matrices   string
	verbose    bool
}

func newCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "cvd",
		Short: "simulate color vision deficiencies for named colors",
		Long: `cvd renders the table of CSS named colors with their simulated
equivalents for a given color vision deficiency, with each row drawn
on the simulated color. With --hex, it simulates a single color
instead of the table.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.deficiency, "deficiency", "d", "none",
		"deficiency to simulate: none, deuteranopia, protanopia, tritanopia, or grayscale")
	cmd.Flags().StringVar(&f.hex, "hex", "",
		"simulate this single #rrggbb color instead of the named-color table")
	cmd.Flags().StringVar(&f.sortBy, "sort", "name", "table order: name or hue")
	cmd.Flags().BoolVar(&f.json, "json", false, "export the table as JSON instead of rendering it")
	cmd.Flags().StringVar(&f.matrices, "matrices", "",
		"TOML file of custom simulation matrices to use in place of the standard set")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable info logging")
	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	if f.verbose {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}

	var d cvd.Deficiency
	if err := d.SetString(f.deficiency); err != nil {
		return fmt.Errorf("%w: %s", cvd.ErrDeficiency, f.deficiency)
	}

	m, err := cvd.MatrixFor(d)
	if err != nil {
		return err
	}
	if f.matrices != "" {
		ms, err := loadMatrices(f.matrices)
		if err != nil {
			return err
		}
		if cm, ok := ms[d]; ok {
			m = cm
		}
		slog.Info("loaded custom matrices", "file", f.matrices, "count", len(ms))
	}

	out := cmd.OutOrStdout()

	if f.hex != "" {
		c, err := colors.FromHex(f.hex)
		if err != nil {
			return err
		}
		s := cvd.SimulateMatrix(c, m)
		_, err = fmt.Fprintf(out, "%s %s rgb(%d,%d,%d)\n", d, cvd.Hex(s), s.R, s.G, s.B)
		return err
	}

	t := table.AllMatrix(d, m)
	switch f.sortBy {
	case "name": // already sorted by name
	case "hue":
		t.SortByHue()
	default:
		return fmt.Errorf("unrecognized sort order: %s", f.sortBy)
	}

	if f.json {
		return t.WriteJSON(out)
	}
	return t.Render(out)
}
