// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterx

import (
	"image"
	"strings"
	"sync"

	"cogentcore.org/polar/base/errors"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fonts are the parsed fonts for each family. Families other
// than serif and monospace use Go Regular.
var fonts = sync.OnceValue(func() map[string]*opentype.Font {
	return map[string]*opentype.Font{
		"sans-serif": errors.Must1(opentype.Parse(goregular.TTF)),
		"serif":      errors.Must1(opentype.Parse(lmroman10regular.TTF)),
		"monospace":  errors.Must1(opentype.Parse(lmmono10regular.TTF)),
	}
})

// familyFont returns the font for the given CSS generic family name.
func familyFont(family string) *opentype.Font {
	fs := fonts()
	if f, ok := fs[strings.ToLower(strings.TrimSpace(family))]; ok {
		return f
	}
	return fs["sans-serif"]
}

// faceCache holds one face per font.
type faceCache map[paint.Font]font.Face

func (fc *faceCache) face(f paint.Font) font.Face {
	if *fc == nil {
		*fc = make(faceCache)
	}
	if f.Size <= 0 {
		f.Size = 13
	}
	if face, ok := (*fc)[f]; ok {
		return face
	}
	face, err := opentype.NewFace(familyFont(f.Family), &opentype.FaceOptions{
		Size:    float64(f.Size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if errors.Log(err) != nil {
		return nil
	}
	(*fc)[f] = face
	return face
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}

// LineHeight returns the height of one line of text in the given font,
// from the font metrics of the face used to draw it.
func (rs *Renderer) LineHeight(f paint.Font) float32 {
	face := rs.faces.face(f)
	if face == nil {
		return f.LineHeight()
	}
	return toFloat(face.Metrics().Height)
}

// TextWidth returns the advance width of the given single line of text.
func (rs *Renderer) TextWidth(text string, f paint.Font) float32 {
	face := rs.faces.face(f)
	if face == nil {
		return 0
	}
	return toFloat(font.MeasureString(face, text))
}

// RenderText draws each line of the text, with the top of the first line
// at the position y, aligned horizontally about the position x.
func (rs *Renderer) RenderText(tx *paint.Text) {
	sty := &tx.Style
	if colors.IsNil(sty.Color) {
		return
	}
	face := rs.faces.face(sty.Font)
	if face == nil {
		return
	}
	m := face.Metrics()
	lh := toFloat(m.Height)
	mask := image.NewAlpha(rs.image.Bounds())
	d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	for i, ln := range paint.Lines(tx.Text) {
		w := toFloat(font.MeasureString(face, ln))
		x := tx.Position.X
		switch sty.Align {
		case paint.AlignCenter:
			x -= w / 2
		case paint.AlignEnd:
			x -= w
		}
		top := tx.Position.Y + float32(i)*lh
		d.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(top) + m.Ascent}
		d.DrawString(ln)
	}
	intersect(mask, rs.clip())
	draw.DrawMask(rs.image, rs.image.Bounds(), colors.Uniform(sty.Color), image.Point{}, mask, mask.Rect.Min, draw.Over)
}
