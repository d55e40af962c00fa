// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"strings"

	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
	"cogentcore.org/polar/paint/ppath"
)

// Highlighter draws highlighted entries, which the data pass skips.
type Highlighter interface {
	DrawHighlighted(c paint.Canvas, d *chart.Data, l *Layout, rc *RenderContext)
}

// Renderer draws polar area charts onto a [paint.Canvas].
type Renderer struct {

	// Options are the chart options.
	Options *Options

	// Highlighter draws the highlighted entries.
	// If nil, [SelectionHighlighter] is used.
	Highlighter Highlighter
}

// NewRenderer returns a new renderer with the given options.
func NewRenderer(opts *Options) *Renderer {
	return &Renderer{Options: opts, Highlighter: SelectionHighlighter{}}
}

// Draw draws the chart data with the given layout in passes:
// the slices, then the highlighted slices, then the center
// overlay, then the value text. The canvas state is saved and
// restored around each pass. Nothing is drawn for an empty layout.
func (r *Renderer) Draw(c paint.Canvas, d *chart.Data, l *Layout, rc *RenderContext) {
	if l.Len() == 0 {
		return
	}
	c.PushContext()
	r.DrawData(c, d, l, rc)
	c.PopContext()

	if len(rc.Highlights) > 0 {
		c.PushContext()
		r.highlighter().DrawHighlighted(c, d, l, rc)
		c.PopContext()
	}

	c.PushContext()
	r.DrawExtras(c, rc)
	c.PopContext()

	c.PushContext()
	r.DrawValues(c, d, l, rc)
	c.PopContext()
}

func (r *Renderer) highlighter() Highlighter {
	if r.Highlighter == nil {
		return SelectionHighlighter{}
	}
	return r.Highlighter
}

// DrawData fills the slices of all visible data sets, skipping zero
// and highlighted entries. Slice angles grow with [RenderContext.PhaseX].
// Every entry advances the angle, whether or not it is drawn.
func (r *Renderer) DrawData(c paint.Canvas, d *chart.Data, l *Layout, rc *RenderContext) {
	angle := 0.0
	for di, ds := range d.DataSets() {
		if !ds.Visible {
			if i, ok := l.Index(di, 0); ok {
				angle = l.StartAngle(i+ds.Len()) * rc.PhaseX
			}
			continue
		}
		space := SliceSpace(ds, rc.ValueSum, rc.Viewport.X, rc.Viewport.Y)
		for j, e := range ds.Entries() {
			i, ok := l.Index(di, j)
			if !ok {
				continue
			}
			sliceAngle := l.SweepAngles[i]
			if !e.IsZero() && !rc.Highlights.Has(di, j) {
				if addSlice(c, rc, float32(l.Radii[i]), angle, sliceAngle, space) {
					c.Fill(ds.Color(j), ppath.EvenOdd)
				}
			}
			angle += sliceAngle * rc.PhaseX
		}
	}
}

// addSlice adds the path of a slice with the given radius, starting at
// the given phase scaled angle after the rotation and covering sliceAngle
// before spacing and phase scaling. The spacing is taken from both
// sides of the slice. It returns false without adding a path for
// slices without a positive radius.
func addSlice(c paint.Canvas, rc *RenderContext, radius float32, angle, sliceAngle, space float64) bool {
	if !(radius > 0) {
		return false
	}
	spaceAngle := SliceSpaceAngle(space, float64(radius))
	start := rc.Rotation + angle + spaceAngle/2*rc.PhaseX
	sweep := max((sliceAngle-spaceAngle)*rc.PhaseX, 0)

	arcStart := math32.FromPolar(rc.Center, radius, deg32(start))
	c.MoveTo(arcStart.X, arcStart.Y)
	c.ArcTo(rc.Center.X, rc.Center.Y, radius, deg32(start), deg32(sweep))
	if space > 0 && sliceAngle <= 180 {
		inner := MinimumRadiusForSpacedSlice(rc.Center, radius, sliceAngle*rc.PhaseX, arcStart, start, sweep)
		p := math32.FromPolar(rc.Center, inner, deg32(start+sweep/2))
		c.LineTo(p.X, p.Y)
	} else {
		c.LineTo(rc.Center.X, rc.Center.Y)
	}
	c.ClosePath()
	return true
}

// SelectionHighlighter draws highlighted slices extended outward by the
// selection shift of their data set, in its highlight color if set.
type SelectionHighlighter struct{}

func (SelectionHighlighter) DrawHighlighted(c paint.Canvas, d *chart.Data, l *Layout, rc *RenderContext) {
	for _, h := range rc.Highlights.Valid(d) {
		ds, _ := d.DataSet(h.DataSet)
		e, _ := ds.EntryForIndex(h.Entry)
		i, ok := l.Index(h.DataSet, h.Entry)
		if !ok || !ds.Visible || e.IsZero() || l.Radii[i] <= 0 {
			continue
		}
		space := SliceSpace(ds, rc.ValueSum, rc.Viewport.X, rc.Viewport.Y)
		radius := float32(l.Radii[i] + max(ds.SelectionShift, 0))
		if !addSlice(c, rc, radius, l.StartAngle(i)*rc.PhaseX, l.SweepAngles[i], space) {
			continue
		}
		clr := ds.HighlightColor
		if clr == nil {
			clr = ds.Color(h.Entry)
		}
		c.Fill(clr, ppath.EvenOdd)
	}
}

// DrawExtras draws the center overlay: the transparent circle
// if enabled, then the center text.
func (r *Renderer) DrawExtras(c paint.Canvas, rc *RenderContext) {
	o := r.Options
	if o.DrawTransparentCircle && !colors.IsNil(o.TransparentCircleColor) {
		cr := rc.Radius * float32(o.TransparentCircleRadiusPercent)
		if cr > 0 {
			c.MoveTo(rc.Center.X+cr, rc.Center.Y)
			c.ArcTo(rc.Center.X, rc.Center.Y, cr, 0, 2*math32.Pi)
			c.ClosePath()
			c.Fill(o.TransparentCircleColor, ppath.NonZero)
		}
	}
	r.drawCenterText(c, rc)
}

// drawCenterText draws the center text centered in a box inset from
// the chart circle by the center text radius percent, or in the box
// of the whole circle when that percent is not positive, clipped to the
// chart circle. Lines that do not fit in the box are dropped, but
// the first line is always drawn.
func (r *Renderer) drawCenterText(c paint.Canvas, rc *RenderContext) {
	o := r.Options
	if !o.DrawCenterText || o.CenterText == "" || rc.Radius <= 0 {
		return
	}
	center := rc.Center.Add(o.CenterTextOffset)
	hole := math32.B2FromCenter(center, rc.Radius)
	bounds := hole
	if o.CenterTextRadiusPercent > 0 {
		w := hole.Size().X
		inset := (w - w*float32(o.CenterTextRadiusPercent)) / 2
		bounds = hole.Inset(inset, inset)
	}

	sty := o.CenterTextStyle
	sty.Align = paint.AlignCenter
	lh := c.LineHeight(sty.Font)
	lines := paint.Lines(o.CenterText)
	if lh > 0 {
		fit := max(int(bounds.Size().Y/lh), 1)
		lines = lines[:min(len(lines), fit)]
	}
	top := bounds.Center().Y - float32(len(lines))*lh/2

	c.PushContext()
	c.ClipEllipse(hole)
	c.DrawText(strings.Join(lines, "\n"), math32.Vec2(bounds.Center().X, top), sty)
	c.PopContext()
}

// DrawValues draws the value lines, value text and entry labels.
func (r *Renderer) DrawValues(c paint.Canvas, d *chart.Data, l *Layout, rc *RenderContext) {
	for _, pl := range PlaceLabels(d, l, rc, r.Options, c) {
		if pl.Line != nil && pl.LineColor != nil {
			c.MoveTo(pl.Line[0].X, pl.Line[0].Y)
			for _, p := range pl.Line[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.Stroke(pl.LineColor, pl.LineWidth)
		}
		for _, t := range pl.Texts {
			c.DrawText(t.Text, t.Position, t.Style)
		}
	}
}
