// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterx renders a [paint.Render] onto an [image.RGBA],
// using golang.org/x/image/vector for path coverage and
// golang.org/x/image/font for text.
package rasterx

import (
	"image"
	"image/color"

	"cogentcore.org/polar/base/iox/imagex"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
	"cogentcore.org/polar/paint/ppath"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Renderer is the image rendering backend.
type Renderer struct {
	image *image.RGBA
	ras   *vector.Rasterizer

	// clips is the stack of clip masks, one per open context.
	// A nil mask does not clip.
	clips []*image.Alpha

	faces faceCache
}

// New returns a new [Renderer] drawing onto a new transparent image
// of the given size, rounded up to whole pixels.
func New(size math32.Vector2) *Renderer {
	img := image.NewRGBA(image.Rectangle{Max: size.ToPointCeil()})
	return newRenderer(img)
}

// NewFromImage returns a new [Renderer] drawing onto a copy of the
// given image, which is not modified.
func NewFromImage(img image.Image) *Renderer {
	return newRenderer(imagex.CloneAsRGBA(img))
}

func newRenderer(img *image.RGBA) *Renderer {
	sz := img.Bounds().Size()
	rs := &Renderer{image: img}
	rs.ras = vector.NewRasterizer(sz.X, sz.Y)
	rs.clips = []*image.Alpha{nil}
	return rs
}

// Image returns the image being rendered to.
func (rs *Renderer) Image() *image.RGBA { return rs.image }

// Size returns the size of the render target in pixels.
func (rs *Renderer) Size() math32.Vector2 {
	return math32.FromPoint(rs.image.Bounds().Size())
}

// Fill fills the whole image with the given color, ignoring any clip.
func (rs *Renderer) Fill(c color.Color) {
	draw.Draw(rs.image, rs.image.Bounds(), colors.Uniform(c), image.Point{}, draw.Src)
}

// Render is the main rendering function.
func (rs *Renderer) Render(r paint.Render) {
	for _, ri := range r {
		switch x := ri.(type) {
		case *paint.Path:
			rs.RenderPath(x)
		case *paint.Text:
			rs.RenderText(x)
		case *paint.ClipEllipse:
			rs.Clip(x.Bounds)
		case *paint.ContextPush:
			rs.clips = append(rs.clips, rs.clip())
		case *paint.ContextPop:
			if len(rs.clips) > 1 {
				rs.clips = rs.clips[:len(rs.clips)-1]
			}
		}
	}
}

func (rs *Renderer) clip() *image.Alpha {
	return rs.clips[len(rs.clips)-1]
}

// RenderPath fills and then strokes the path according to its style.
func (rs *Renderer) RenderPath(pt *paint.Path) {
	sty := &pt.Style
	if !colors.IsNil(sty.Fill) {
		polys, _ := pt.Path.Flatten(ppath.PixelTolerance)
		rs.reset()
		for _, poly := range polys {
			rs.addPolygon(poly)
		}
		rs.drawMask(sty.Fill)
	}
	if !colors.IsNil(sty.Stroke) && sty.StrokeWidth > 0 {
		polys, closed := pt.Path.Flatten(ppath.PixelTolerance)
		rs.reset()
		for i, poly := range polys {
			rs.addStroke(poly, closed[i], sty.StrokeWidth)
		}
		rs.drawMask(sty.Stroke)
	}
}

// Clip intersects the current clip with the ellipse inscribed in b.
func (rs *Renderer) Clip(b math32.Box2) {
	c := b.Center()
	sz := b.Size()
	rx, ry := sz.X/2, sz.Y/2
	n := ppath.ArcSegments(max(rx, ry), 2*math32.Pi, ppath.PixelTolerance)
	poly := make([]math32.Vector2, n)
	for i := range n {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		poly[i] = math32.Vec2(c.X+rx*cos, c.Y+ry*sin)
	}
	rs.reset()
	rs.addPolygon(poly)
	rs.clips[len(rs.clips)-1] = rs.coverage()
}

func (rs *Renderer) reset() {
	sz := rs.image.Bounds().Size()
	rs.ras.Reset(sz.X, sz.Y)
}

func (rs *Renderer) addPolygon(poly []math32.Vector2) {
	if len(poly) < 3 {
		return
	}
	rs.ras.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		rs.ras.LineTo(p.X, p.Y)
	}
	rs.ras.ClosePath()
}

// addStroke adds one quad per segment. All quads wind the same way
// relative to their segment, so overlaps saturate rather than cancel.
func (rs *Renderer) addStroke(poly []math32.Vector2, closed bool, width float32) {
	hw := width / 2
	for i := 1; i < len(poly); i++ {
		p0, p1 := poly[i-1], poly[i]
		d := p1.Sub(p0)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := math32.Vec2(-d.Y, d.X).MulScalar(hw / l)
		// extend interior ends by half the width so corners are covered
		e := d.MulScalar(hw / l)
		if closed || i > 1 {
			p0 = p0.Sub(e)
		}
		if closed || i < len(poly)-1 {
			p1 = p1.Add(e)
		}
		rs.addPolygon([]math32.Vector2{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)})
	}
}

// coverage rasterizes the accumulated polygons into a mask,
// intersected with the current clip.
func (rs *Renderer) coverage() *image.Alpha {
	b := rs.image.Bounds()
	mask := image.NewAlpha(b)
	rs.ras.DrawOp = draw.Src
	rs.ras.Draw(mask, b, image.Opaque, image.Point{})
	intersect(mask, rs.clip())
	return mask
}

func (rs *Renderer) drawMask(c color.Color) {
	mask := rs.coverage()
	draw.DrawMask(rs.image, rs.image.Bounds(), colors.Uniform(c), image.Point{}, mask, mask.Rect.Min, draw.Over)
}

// intersect multiplies the alpha of mask by clip, in place.
func intersect(mask, clip *image.Alpha) {
	if clip == nil {
		return
	}
	for i := range mask.Pix {
		mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(clip.Pix[i]) / 255)
	}
}
