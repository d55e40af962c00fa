// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/math32"
)

// RenderContext has the per-draw parameters of a chart,
// constructed for each draw and discarded after it.
type RenderContext struct {

	// Center is the center of the chart circle.
	Center math32.Vector2

	// Radius is the outer radius of the chart.
	Radius float32

	// Rotation is the angle in degrees at which the first slice starts.
	Rotation float64

	// PhaseX is the angular growth of the chart, in [0, 1].
	PhaseX float64

	// PhaseY is the radial growth of the chart, in [0, 1].
	PhaseY float64

	// Highlights are the highlighted entries.
	Highlights chart.Highlights

	// Viewport is the size of the content area of the chart.
	Viewport math32.Vector2

	// ValueSum is the sum of all values of the chart data.
	ValueSum float64
}

// NewRenderContext returns a new render context for the given data
// drawn in a viewport of the given size with the given options,
// at full phase. The chart circle is the [CircleBox] of the viewport.
func NewRenderContext(d *chart.Data, opts *Options, viewport math32.Vector2) *RenderContext {
	box := CircleBox(viewport, selectionShift(d))
	return &RenderContext{
		Center:   box.Center(),
		Radius:   box.Size().X / 2,
		Rotation: opts.Rotation,
		PhaseX:   1,
		PhaseY:   1,
		Viewport: viewport,
		ValueSum: d.ValueSum(),
	}
}

// SetPhases sets the animation phases, clamped to [0, 1].
func (rc *RenderContext) SetPhases(x, y float64) *RenderContext {
	rc.PhaseX = clampPhase(x)
	rc.PhaseY = clampPhase(y)
	return rc
}

func clampPhase(p float64) float64 {
	if !(p > 0) {
		return 0
	}
	return min(p, 1)
}

// CircleBox returns the square box of the chart circle in a viewport
// of the given size: the largest centered square, inset on each side
// by the selection shift so that highlighted slices fit.
func CircleBox(viewport math32.Vector2, shift float32) math32.Box2 {
	diameter := max(min(viewport.X, viewport.Y), 0)
	radius := max(diameter/2-max(shift, 0), 0)
	return math32.B2FromCenter(viewport.MulScalar(0.5), radius)
}

// selectionShift returns the selection shift of the first data set.
func selectionShift(d *chart.Data) float32 {
	ds, ok := d.DataSet(0)
	if !ok {
		return 0
	}
	return float32(ds.SelectionShift)
}
