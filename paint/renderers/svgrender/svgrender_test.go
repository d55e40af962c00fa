// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgrender

import (
	"encoding/xml"
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
	"cogentcore.org/polar/paint/ppath"
	"github.com/stretchr/testify/assert"
)

func render(f func(pc *paint.Painter)) string {
	rs := New(math32.Vec2(100, 80))
	pc := paint.NewPainter(rs)
	f(pc)
	rs.Render(pc.RenderDone())
	return string(rs.Source())
}

// wellFormed checks that src parses as XML.
func wellFormed(t *testing.T, src string) {
	d := xml.NewDecoder(strings.NewReader(src))
	for {
		_, err := d.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			return
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	src := render(func(pc *paint.Painter) {})
	assert.Equal(t, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"100\" height=\"80\" viewBox=\"0 0 100 80\">\n</svg>\n", src)
}

func TestRenderPath(t *testing.T) {
	src := render(func(pc *paint.Painter) {
		pc.MoveTo(60, 40)
		pc.ArcTo(50, 40, 10, 0, math32.Pi/2)
		pc.LineTo(50, 40)
		pc.ClosePath()
		pc.Fill(color.RGBA{255, 0, 0, 255}, ppath.EvenOdd)

		pc.MoveTo(0, 0)
		pc.LineTo(10, 10)
		pc.Stroke(colors.WithAlpha(colors.Black, 128), 1.5)
	})
	wellFormed(t, src)
	assert.Contains(t, src, `<path d="M60 40A10 10 0 0 1 50 50L50 40Z" fill="#ff0000" fill-rule="evenodd"/>`)
	assert.Contains(t, src, `<path d="M0 0L10 10" fill="none" stroke="#000000" stroke-opacity="0.5" stroke-width="1.5"/>`)
}

func TestRenderText(t *testing.T) {
	src := render(func(pc *paint.Painter) {
		sty := paint.TextStyle{Font: paint.Font{Family: "sans-serif", Size: 10}, Color: colors.White, Align: paint.AlignEnd}
		pc.DrawText("a<b\nc", math32.Vec2(20, 30), sty)
	})
	wellFormed(t, src)
	assert.Contains(t, src, `<text x="20" y="30" font-family="sans-serif" font-size="10" text-anchor="end" dominant-baseline="hanging" fill="#ffffff">a&lt;b</text>`)
	assert.Contains(t, src, `<text x="20" y="42" `)
}

func TestRenderClip(t *testing.T) {
	src := render(func(pc *paint.Painter) {
		pc.PushContext()
		pc.ClipEllipse(math32.B2(10, 10, 30, 50))
		pc.DrawText("x", math32.Vec2(20, 30), paint.TextStyle{Font: paint.Font{Size: 10}, Color: colors.Black})
		pc.PopContext()
		pc.PushContext()
	})
	wellFormed(t, src)
	assert.Contains(t, src, `<clipPath id="clip1"><ellipse cx="20" cy="30" rx="10" ry="20"/></clipPath>`)
	assert.Contains(t, src, `<g clip-path="url(#clip1)">`)
	assert.Equal(t, strings.Count(src, "<g"), strings.Count(src, "</g>"))
}
