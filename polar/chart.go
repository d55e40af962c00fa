// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polar lays out and draws polar area charts, in which every
// entry gets a slice of the same angle, with a radius proportional
// to its value.
package polar

import (
	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
)

// Chart is a polar area chart: its data, options and highlights,
// drawn by a [Renderer]. The layout is computed when the chart is
// drawn and reused until the data, size or angle change.
// A Chart is not safe for concurrent use; changes to the data
// must not happen during a draw.
type Chart struct {

	// Data is the chart data.
	Data *chart.Data

	// Options are the chart options.
	Options Options

	// Highlights are the highlighted entries.
	Highlights chart.Highlights

	// Highlighter draws the highlighted entries.
	// If nil, [SelectionHighlighter] is used.
	Highlighter Highlighter

	// PhaseX and PhaseY are the animation phases in [0, 1],
	// which are 1 when the chart is fully shown.
	PhaseX float64
	PhaseY float64

	layout    *Layout
	layoutKey layoutKey

	// layoutCount is the number of layouts computed.
	layoutCount int
}

// layoutKey has the inputs that the cached layout was computed from.
type layoutKey struct {
	data     *chart.Data
	version  uint64
	radius   float64
	maxAngle float64
}

// NewChart returns a new chart of the given data with default options.
func NewChart(d *chart.Data) *Chart {
	ch := &Chart{Data: d, PhaseX: 1, PhaseY: 1}
	ch.Options.Defaults()
	return ch
}

// Kind returns [chart.Polar].
func (ch *Chart) Kind() chart.Kind {
	return chart.Polar
}

// Require returns a [*chart.UnsupportedError] if polar charts
// do not have the given capability, such as an axis.
func (ch *Chart) Require(c chart.Capability) error {
	return ch.Kind().Require(c)
}

// RenderContext returns a new render context for drawing
// the chart in a viewport of the given size.
func (ch *Chart) RenderContext(viewport math32.Vector2) *RenderContext {
	rc := NewRenderContext(ch.Data, &ch.Options, viewport)
	rc.SetPhases(ch.PhaseX, ch.PhaseY)
	rc.Highlights = ch.Highlights.Valid(ch.Data)
	return rc
}

// Layout returns the layout of the chart data for the given outer
// radius, computing it only if the data, radius or angle changed
// since the last call.
func (ch *Chart) Layout(radius float32) *Layout {
	key := layoutKey{data: ch.Data, version: ch.Data.Version(), radius: float64(radius), maxAngle: ch.Options.Angle()}
	if ch.layout != nil && ch.layoutKey == key {
		return ch.layout
	}
	ch.layout = ComputeLayout(ch.Data, key.maxAngle, key.radius)
	ch.layoutKey = key
	ch.layoutCount++
	return ch.layout
}

// Draw draws the chart onto the canvas in a viewport of the given size.
// Nothing is drawn if the chart has no entries.
func (ch *Chart) Draw(c paint.Canvas, viewport math32.Vector2) {
	if ch.Data.EntryCount() == 0 {
		return
	}
	rc := ch.RenderContext(viewport)
	r := NewRenderer(&ch.Options)
	if ch.Highlighter != nil {
		r.Highlighter = ch.Highlighter
	}
	r.Draw(c, ch.Data, ch.Layout(rc.Radius), rc)
}

// MarkerPosition returns the position of a marker for the given
// highlighted entry in a viewport of the given size, on the bisector
// of its slice, and false if the entry does not exist.
func (ch *Chart) MarkerPosition(h chart.Highlight, viewport math32.Vector2) (math32.Vector2, bool) {
	rc := ch.RenderContext(viewport)
	l := ch.Layout(rc.Radius)
	i, ok := l.Index(h.DataSet, h.Entry)
	if !ok {
		return math32.Vector2{}, false
	}
	r := rc.Radius
	off := r / 10 * 3.6
	if ch.Options.DrawHole {
		off = (r - r*float32(ch.Options.HoleRadiusPercent)) / 2
	}
	r -= off
	angle := rc.Rotation + (l.AbsoluteAngles[i]-l.SweepAngles[i]/2)*rc.PhaseY
	return math32.FromPolar(rc.Center, r, deg32(angle)), true
}
