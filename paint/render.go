// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint/ppath"
)

// Renderer is the interface for all backend rendering outputs.
type Renderer interface {
	// Render renders the list of render items.
	Render(r Render)
}

// Render represents a collection of render [Item]s to be rendered.
type Render []Item

// Item is a union interface for render items:
// [Path], [Text], [ClipEllipse], [ContextPush] and [ContextPop].
type Item interface {
	IsRenderItem()
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// PathStyle has the fill and stroke parameters of a [Path].
// A nil Fill or Stroke color means no fill or no stroke.
type PathStyle struct {
	Fill     color.Color
	FillRule ppath.FillRule

	Stroke      color.Color
	StrokeWidth float32
}

// Path is a path drawing render [Item]: responsible for all vector graphics
// drawing functionality.
type Path struct {
	// Path specifies the shape(s) to be drawn, using commands:
	// MoveTo, LineTo, ArcTo, and Close.
	// Each command has the applicable coordinates appended after it,
	// like the SVG path element.
	Path ppath.Path

	// Style has the fill and stroke parameters for rendering the path.
	Style PathStyle
}

// interface assertion.
func (p *Path) IsRenderItem() {}

// Text is a text rendering render item.
type Text struct {
	// Text is the text to render. Newlines start additional lines,
	// each advanced by the line height of the style font.
	Text string

	// Position is the anchor of the first line: its top edge in y,
	// and in x the left, center, or right edge depending on Style.Align.
	Position math32.Vector2

	// Style has the font, color and alignment.
	Style TextStyle
}

// interface assertion.
func (tx *Text) IsRenderItem() {}

// ClipEllipse restricts all subsequent drawing up to the enclosing
// [ContextPop] to the ellipse inscribed in Bounds.
type ClipEllipse struct {
	Bounds math32.Box2
}

// interface assertion.
func (c *ClipEllipse) IsRenderItem() {}

// ContextPush is a graphics state push render item, which can be used by
// renderers that track group structure (e.g., SVG) and clipping.
type ContextPush struct{}

// interface assertion.
func (p *ContextPush) IsRenderItem() {}

// ContextPop is a graphics state pop render item, which restores the state
// saved by the matching [ContextPush].
type ContextPop struct{}

// interface assertion.
func (p *ContextPop) IsRenderItem() {}
