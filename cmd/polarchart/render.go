// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/polar/base/iox/imagex"
	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/config"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
	"cogentcore.org/polar/paint/renderers/rasterx"
	"cogentcore.org/polar/paint/renderers/svgrender"
	"cogentcore.org/polar/polar"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// renderOptions are the options for rendering a chart file.
type renderOptions struct {

	// Output is the output file. Its extension selects SVG or an
	// image format. If empty, it is the input file with a .png extension.
	Output string

	// Width and Height are the image size in pixels.
	Width, Height int

	// Background is the hex background color of images.
	// If empty, the background is transparent.
	Background string

	// PhaseX and PhaseY are the animation phases in [0, 1].
	PhaseX, PhaseY float64

	// Highlights are dataset:entry pairs added to the
	// highlights of the chart file.
	Highlights []string
}

func (ro *renderOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&ro.Output, "output", "o", "", "output file (.png, .jpg, .gif, .tif, .bmp or .svg)")
	f.IntVar(&ro.Width, "width", 400, "width in pixels")
	f.IntVar(&ro.Height, "height", 400, "height in pixels")
	f.StringVar(&ro.Background, "background", "#ffffff", "background color of images, empty for transparent")
	f.Float64Var(&ro.PhaseX, "phase-x", 1, "horizontal animation phase")
	f.Float64Var(&ro.PhaseY, "phase-y", 1, "vertical animation phase")
	f.StringSliceVar(&ro.Highlights, "highlight", nil, "highlighted entries as dataset:entry")
}

// output returns the output file for the given input file.
func (ro *renderOptions) output(input string) string {
	if ro.Output != "" {
		return ro.Output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
}

func newRenderCmd() *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a chart file to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderFile(args[0], ro)
		},
	}
	ro.addFlags(cmd)
	return cmd
}

// renderFile loads the chart in the given file and saves it
// to the output file.
func renderFile(input string, ro *renderOptions) error {
	if ro.Width <= 0 || ro.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", ro.Width, ro.Height)
	}
	input, err := homedir.Expand(input)
	if err != nil {
		return err
	}
	ch, err := config.Open(input)
	if err != nil {
		return err
	}
	ch.PhaseX, ch.PhaseY = ro.PhaseX, ro.PhaseY
	for _, s := range ro.Highlights {
		h, err := parseHighlight(s)
		if err != nil {
			return err
		}
		ch.Highlights = append(ch.Highlights, h)
	}
	out, err := homedir.Expand(ro.output(input))
	if err != nil {
		return err
	}
	if err := saveChart(ch, out, ro); err != nil {
		return err
	}
	slog.Info("rendered chart", "input", input, "output", out, "entries", ch.Data.EntryCount())
	return nil
}

// parseHighlight parses a highlight in the form dataset:entry.
func parseHighlight(s string) (chart.Highlight, error) {
	ds, e, ok := strings.Cut(s, ":")
	if !ok {
		return chart.Highlight{}, fmt.Errorf("highlight %q: expected dataset:entry", s)
	}
	di, err := strconv.Atoi(strings.TrimSpace(ds))
	if err != nil {
		return chart.Highlight{}, fmt.Errorf("highlight %q: %w", s, err)
	}
	ei, err := strconv.Atoi(strings.TrimSpace(e))
	if err != nil {
		return chart.Highlight{}, fmt.Errorf("highlight %q: %w", s, err)
	}
	return chart.Highlight{DataSet: di, Entry: ei}, nil
}

// saveChart draws the chart and saves it to the given file.
func saveChart(ch *polar.Chart, filename string, ro *renderOptions) error {
	size := math32.Vec2(float32(ro.Width), float32(ro.Height))
	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		rs := svgrender.New(size)
		rs.Render(drawChart(ch, rs, size))
		return os.WriteFile(filename, rs.Source(), 0666)
	}
	if _, err := imagex.ExtToFormat(filepath.Ext(filename)); err != nil {
		return err
	}
	rs := rasterx.New(size)
	if ro.Background != "" {
		bg, err := colors.FromHex(ro.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		rs.Fill(bg)
	} else {
		rs.Fill(color.Transparent)
	}
	rs.Render(drawChart(ch, rs, size))
	return imagex.Save(rs.Image(), filename)
}

func drawChart(ch *polar.Chart, m paint.Measurer, size math32.Vector2) paint.Render {
	pc := paint.NewPainter(m)
	ch.Draw(pc, size)
	return pc.RenderDone()
}
