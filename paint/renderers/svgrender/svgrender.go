// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgrender renders a [paint.Render] to SVG source.
package svgrender

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"strconv"

	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
)

// Renderer is the SVG renderer.
type Renderer struct {
	size math32.Vector2

	buf bytes.Buffer

	// groups is the number of open <g> elements per context level.
	groups []int

	// clipID is the last clip path id used.
	clipID int
}

func New(size math32.Vector2) *Renderer {
	return &Renderer{size: size}
}

// Source returns the SVG source of the last render.
func (rs *Renderer) Source() []byte {
	return rs.buf.Bytes()
}

func (rs *Renderer) Size() math32.Vector2 {
	return rs.size
}

// LineHeight returns the default line height of the font, which is
// also the line advance used for multi-line text.
func (rs *Renderer) LineHeight(f paint.Font) float32 {
	return f.LineHeight()
}

func num(f float32) string {
	f = math32.Round(f*100) / 100
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// Render is the main rendering function. It replaces any previous source.
func (rs *Renderer) Render(r paint.Render) {
	rs.buf.Reset()
	rs.groups = []int{0}
	rs.clipID = 0
	w, h := num(rs.size.X), num(rs.size.Y)
	fmt.Fprintf(&rs.buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n", w, h, w, h)
	for _, ri := range r {
		switch x := ri.(type) {
		case *paint.Path:
			rs.RenderPath(x)
		case *paint.Text:
			rs.RenderText(x)
		case *paint.ClipEllipse:
			rs.Clip(x.Bounds)
		case *paint.ContextPush:
			rs.PushContext()
		case *paint.ContextPop:
			rs.PopContext()
		}
	}
	for len(rs.groups) > 0 {
		rs.closeGroups()
	}
	rs.buf.WriteString("</svg>\n")
}

func (rs *Renderer) PushContext() {
	rs.buf.WriteString("<g>\n")
	rs.groups = append(rs.groups, 1)
}

func (rs *Renderer) PopContext() {
	if len(rs.groups) > 1 {
		rs.closeGroups()
	}
}

func (rs *Renderer) closeGroups() {
	n := rs.groups[len(rs.groups)-1]
	for range n {
		rs.buf.WriteString("</g>\n")
	}
	rs.groups = rs.groups[:len(rs.groups)-1]
}

// Clip defines a clip path for the ellipse inscribed in b and opens
// a group using it, which is closed with the current context.
func (rs *Renderer) Clip(b math32.Box2) {
	rs.clipID++
	c := b.Center()
	sz := b.Size()
	fmt.Fprintf(&rs.buf, "<clipPath id=\"clip%d\"><ellipse cx=\"%s\" cy=\"%s\" rx=\"%s\" ry=\"%s\"/></clipPath>\n",
		rs.clipID, num(c.X), num(c.Y), num(sz.X/2), num(sz.Y/2))
	fmt.Fprintf(&rs.buf, "<g clip-path=\"url(#clip%d)\">\n", rs.clipID)
	rs.groups[len(rs.groups)-1]++
}

// paintAttr writes the color attribute with its opacity when not opaque.
func paintAttr(b *bytes.Buffer, name string, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := n.A
	n.A = 255
	fmt.Fprintf(b, " %s=\"%s\"", name, colors.AsHex(n))
	if a != 255 {
		fmt.Fprintf(b, " %s-opacity=\"%s\"", name, num(float32(a)/255))
	}
}

func (rs *Renderer) RenderPath(pt *paint.Path) {
	d := pt.Path.ToSVG()
	if d == "" {
		return
	}
	sty := &pt.Style
	fmt.Fprintf(&rs.buf, "<path d=\"%s\"", d)
	if colors.IsNil(sty.Fill) {
		rs.buf.WriteString(" fill=\"none\"")
	} else {
		paintAttr(&rs.buf, "fill", sty.Fill)
		fmt.Fprintf(&rs.buf, " fill-rule=\"%s\"", sty.FillRule.SVG())
	}
	if !colors.IsNil(sty.Stroke) && sty.StrokeWidth > 0 {
		paintAttr(&rs.buf, "stroke", sty.Stroke)
		fmt.Fprintf(&rs.buf, " stroke-width=\"%s\"", num(sty.StrokeWidth))
	}
	rs.buf.WriteString("/>\n")
}

var anchors = map[paint.Aligns]string{
	paint.AlignStart:  "start",
	paint.AlignCenter: "middle",
	paint.AlignEnd:    "end",
}

// RenderText writes one text element per line. The y position is the
// top of each line, using a hanging baseline.
func (rs *Renderer) RenderText(tx *paint.Text) {
	sty := &tx.Style
	if colors.IsNil(sty.Color) {
		return
	}
	lh := rs.LineHeight(sty.Font)
	for i, ln := range paint.Lines(tx.Text) {
		y := tx.Position.Y + float32(i)*lh
		fmt.Fprintf(&rs.buf, "<text x=\"%s\" y=\"%s\"", num(tx.Position.X), num(y))
		if sty.Font.Family != "" {
			rs.buf.WriteString(" font-family=\"")
			xml.EscapeText(&rs.buf, []byte(sty.Font.Family))
			rs.buf.WriteString("\"")
		}
		fmt.Fprintf(&rs.buf, " font-size=\"%s\" text-anchor=\"%s\" dominant-baseline=\"hanging\"", num(sty.Font.Size), anchors[sty.Align])
		paintAttr(&rs.buf, "fill", sty.Color)
		rs.buf.WriteString(">")
		xml.EscapeText(&rs.buf, []byte(ln))
		rs.buf.WriteString("</text>\n")
	}
}
