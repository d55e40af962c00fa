// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"log/slog"

	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint/ppath"
)

// Canvas is the drawing surface used by chart renderers.
// Path construction accumulates into a current path, which
// [Canvas.Fill] and [Canvas.Stroke] consume.
// Angles are in radians, measured clockwise from the positive x axis
// in y-down pixel coordinates.
type Canvas interface {
	// MoveTo starts a new subpath at (x,y).
	MoveTo(x, y float32)

	// LineTo adds a line from the current point to (x,y).
	LineTo(x, y float32)

	// ArcTo adds a circular arc around (cx,cy) of radius r from angle start,
	// sweeping by delta. A line connects the current point to the arc start.
	ArcTo(cx, cy, r, start, delta float32)

	// ClosePath closes the current subpath.
	ClosePath()

	// Fill fills the current path with the given color and rule,
	// and clears the path.
	Fill(c color.Color, rule ppath.FillRule)

	// Stroke strokes the current path with the given color and width,
	// and clears the path.
	Stroke(c color.Color, width float32)

	// DrawText draws text anchored at pos, see [Text.Position].
	DrawText(text string, pos math32.Vector2, sty TextStyle)

	// PushContext saves the graphics state, including the clip.
	PushContext()

	// PopContext restores the state saved by the last PushContext.
	PopContext()

	// ClipEllipse intersects the clip with the ellipse inscribed in b.
	ClipEllipse(b math32.Box2)

	// LineHeight returns the height of one line of text in the font.
	LineHeight(f Font) float32
}

// Painter is a [Canvas] that records drawing as a [Render]
// to be replayed by one or more [Renderer]s.
type Painter struct {
	// Render is the render being recorded.
	Render Render

	// Measurer provides line heights. If nil, [Font.LineHeight] is used.
	Measurer Measurer

	path  ppath.Path
	depth int
}

// NewPainter returns a new [Painter] using the given measurer,
// which may be nil.
func NewPainter(m Measurer) *Painter {
	return &Painter{Measurer: m}
}

func (pc *Painter) MoveTo(x, y float32) { pc.path.MoveTo(x, y) }

func (pc *Painter) LineTo(x, y float32) { pc.path.LineTo(x, y) }

func (pc *Painter) ArcTo(cx, cy, r, start, delta float32) {
	pc.path.Arc(cx, cy, r, start, delta)
}

func (pc *Painter) ClosePath() { pc.path.Close() }

// Fill records a filled path item for the current path. Nothing is
// recorded for a nil color or an empty path.
func (pc *Painter) Fill(c color.Color, rule ppath.FillRule) {
	if c != nil && !pc.path.Empty() {
		pc.Render.Add(&Path{Path: pc.path.Clone(), Style: PathStyle{Fill: c, FillRule: rule}})
	}
	pc.path.Reset()
}

// Stroke records a stroked path item for the current path. Nothing is
// recorded for a nil color, a non-positive width, or an empty path.
func (pc *Painter) Stroke(c color.Color, width float32) {
	if c != nil && width > 0 && !pc.path.Empty() {
		pc.Render.Add(&Path{Path: pc.path.Clone(), Style: PathStyle{Stroke: c, StrokeWidth: width}})
	}
	pc.path.Reset()
}

func (pc *Painter) DrawText(text string, pos math32.Vector2, sty TextStyle) {
	if text == "" || sty.Color == nil {
		return
	}
	pc.Render.Add(&Text{Text: text, Position: pos, Style: sty})
}

func (pc *Painter) PushContext() {
	pc.depth++
	pc.Render.Add(&ContextPush{})
}

// PopContext records a pop. An unbalanced pop is logged and ignored.
func (pc *Painter) PopContext() {
	if pc.depth == 0 {
		slog.Error("paint.Painter: PopContext without matching PushContext")
		return
	}
	pc.depth--
	pc.Render.Add(&ContextPop{})
}

func (pc *Painter) ClipEllipse(b math32.Box2) {
	pc.Render.Add(&ClipEllipse{Bounds: b})
}

func (pc *Painter) LineHeight(f Font) float32 {
	if pc.Measurer != nil {
		return pc.Measurer.LineHeight(f)
	}
	return f.LineHeight()
}

// RenderDone returns the recorded render, closing any contexts that
// were left open, and resets the painter for the next frame.
func (pc *Painter) RenderDone() Render {
	for ; pc.depth > 0; pc.depth-- {
		pc.Render.Add(&ContextPop{})
	}
	rd := pc.Render
	pc.Render = nil
	pc.path.Reset()
	return rd
}
