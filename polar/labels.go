// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"image/color"
	"math"

	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
)

// The offsets of label text from the entry and value line.
const (
	// labelRadiusFraction is the fraction of the slice radius
	// that labels are moved inward by.
	labelRadiusFraction = 0.3

	// labelLineGap is the horizontal gap in pixels between the end
	// of a value line and its text.
	labelLineGap = 5
)

// TextPlacement is one text to draw for an entry.
type TextPlacement struct {
	Text     string
	Position math32.Vector2
	Style    paint.TextStyle
}

// LabelPlacement is where the value text and entry label
// of one entry are drawn.
type LabelPlacement struct {

	// DataSet and Entry are the indexes of the entry.
	DataSet int
	Entry   int

	// Angle is the angle in degrees of the line from the center
	// of the chart through the labels, including the rotation.
	Angle float64

	// Align is the alignment of text outside the slice.
	Align paint.Aligns

	// Line is the value line connecting outside text to the slice,
	// from the slice outward. It is nil if no text is outside.
	Line []math32.Vector2

	// LineColor and LineWidth are the stroke of the value line.
	// A nil color means the line is not drawn.
	LineColor color.Color
	LineWidth float32

	// Texts are the texts to draw, in order.
	Texts []TextPlacement
}

// OutsideAlign returns the alignment of text outside a slice at the
// given angle in degrees, and the horizontal direction of the second
// part of its value line. Text on the left half of the circle, with the
// angle in [90, 270] after reducing it modulo 360, extends to the left
// and is aligned to its end. Other text extends to the right.
func OutsideAlign(angle float64) (paint.Aligns, float32) {
	a := normDeg(angle)
	if a >= 90 && a <= 270 {
		return paint.AlignEnd, -1
	}
	return paint.AlignStart, 1
}

// normDeg reduces an angle in degrees to [0, 360).
func normDeg(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// PlaceLabels returns the placement of the value text and entry labels
// of all visible data sets. Entries that have nothing to draw
// are not included. The measurer gives the line height of fonts.
func PlaceLabels(d *chart.Data, l *Layout, rc *RenderContext, opts *Options, m paint.Measurer) []LabelPlacement {
	var pls []LabelPlacement
	for di, ds := range d.DataSets() {
		if !ds.Visible {
			continue
		}
		drawValues := ds.DrawValues && ds.ValueFormatter != nil
		if !drawValues && !opts.DrawEntryLabels {
			continue
		}
		for j, e := range ds.Entries() {
			i, ok := l.Index(di, j)
			if !ok {
				continue
			}
			pl := placeLabel(d, l, rc, opts, m, di, j, i, e)
			if len(pl.Texts) > 0 || pl.Line != nil {
				pls = append(pls, pl)
			}
		}
	}
	return pls
}

// placeLabel places the labels of entry e, which is entry j of
// data set di and has layout index i.
func placeLabel(d *chart.Data, l *Layout, rc *RenderContext, opts *Options, m paint.Measurer, di, j, i int, e chart.Entry) LabelPlacement {
	ds, _ := d.DataSet(di)
	pl := LabelPlacement{DataSet: di, Entry: j}

	radius := l.Radii[i]
	labelRadius := radius - radius*labelRadiusFraction
	space := SliceSpace(ds, rc.ValueSum, rc.Viewport.X, rc.Viewport.Y)
	angleOffset := (l.SweepAngles[i] - SliceSpaceAngle(space, labelRadius)/2) / 2
	pl.Angle = rc.Rotation + (l.StartAngle(i)*rc.PhaseX+angleOffset)*rc.PhaseY

	valueStyle := paint.TextStyle{Font: ds.ValueFont, Color: ds.ValueTextColorAt(j)}
	labelStyle := entryLabelStyle(ds, opts, valueStyle)
	lineHeight := m.LineHeight(ds.ValueFont)

	var valueText string
	if ds.DrawValues && ds.ValueFormatter != nil && e.IsFinite() {
		valueText = ds.ValueFormatter.FormatValue(entryValue(e, opts, rc), e, di, rc.Viewport)
	}
	drawValue := valueText != ""
	drawLabel := opts.DrawEntryLabels && e.Label != ""
	xOutside := opts.DrawEntryLabels && ds.XValuePosition == chart.OutsideSlice
	yOutside := drawValue && ds.YValuePosition == chart.OutsideSlice
	xInside := opts.DrawEntryLabels && ds.XValuePosition == chart.InsideSlice
	yInside := drawValue && ds.YValuePosition == chart.InsideSlice

	dir := math32.FromPolar(math32.Vector2{}, 1, deg32(pl.Angle))
	at := func(r float64) math32.Vector2 {
		return rc.Center.Add(dir.MulScalar(float32(r)))
	}

	if xOutside || yOutside {
		part2 := labelRadius * ds.ValueLinePart2Length
		if ds.ValueLineVariableLength {
			part2 *= math.Abs(math.Sin(pl.Angle * math32.DegToRadFactor))
		}
		pt0 := at(radius * ds.ValueLinePart1OffsetPercentage)
		pt1 := at(labelRadius * (1 + ds.ValueLinePart1Length))
		var sign float32
		pl.Align, sign = OutsideAlign(pl.Angle)
		pt2 := math32.Vec2(pt1.X+sign*float32(part2), pt1.Y)
		pl.Line = []math32.Vector2{pt0, pt1, pt2}
		pl.LineColor = ds.ValueLineColor
		pl.LineWidth = ds.ValueLineWidth

		anchor := math32.Vec2(pt2.X+sign*labelLineGap, pt2.Y-lineHeight)
		valueStyle.Align, labelStyle.Align = pl.Align, pl.Align
		pl.Texts = stackTexts(pl.Texts, anchor, lineHeight, xOutside, yOutside, drawLabel, valueText, e.Label, valueStyle, labelStyle)
	}

	if xInside || yInside {
		pt := at(labelRadius)
		anchor := math32.Vec2(pt.X, pt.Y-lineHeight)
		valueStyle.Align, labelStyle.Align = paint.AlignCenter, paint.AlignCenter
		pl.Texts = stackTexts(pl.Texts, anchor, lineHeight, xInside, yInside, drawLabel, valueText, e.Label, valueStyle, labelStyle)
	}
	return pl
}

// stackTexts appends the value text and entry label at the given
// anchor. When both are drawn, the label is one line below the value.
// When only one is drawn, it is moved down by half a line.
func stackTexts(ts []TextPlacement, anchor math32.Vector2, lineHeight float32, drawX, drawY, hasLabel bool, value, label string, valueStyle, labelStyle paint.TextStyle) []TextPlacement {
	switch {
	case drawX && drawY:
		ts = append(ts, TextPlacement{Text: value, Position: anchor, Style: valueStyle})
		if hasLabel {
			ts = append(ts, TextPlacement{Text: label, Position: anchor.Add(math32.Vec2(0, lineHeight)), Style: labelStyle})
		}
	case drawX:
		if hasLabel {
			ts = append(ts, TextPlacement{Text: label, Position: anchor.Add(math32.Vec2(0, lineHeight/2)), Style: labelStyle})
		}
	case drawY:
		ts = append(ts, TextPlacement{Text: value, Position: anchor.Add(math32.Vec2(0, lineHeight/2)), Style: valueStyle})
	}
	return ts
}

// entryValue returns the value to format for the entry,
// which is a percent of the value sum in percent mode.
func entryValue(e chart.Entry, opts *Options, rc *RenderContext) float64 {
	if !opts.UsePercentValues {
		return e.Y
	}
	if rc.ValueSum == 0 {
		return 0
	}
	return e.Y * 100 / rc.ValueSum
}

// entryLabelStyle returns the style of entry labels of the data set:
// the data set style, then the chart style, then the value style.
func entryLabelStyle(ds *chart.DataSet, opts *Options, value paint.TextStyle) paint.TextStyle {
	sty := value
	switch {
	case ds.EntryLabelFont != nil:
		sty.Font = *ds.EntryLabelFont
	case !opts.EntryLabelFont.IsZero():
		sty.Font = opts.EntryLabelFont
	}
	switch {
	case ds.EntryLabelColor != nil:
		sty.Color = ds.EntryLabelColor
	case opts.EntryLabelColor != nil:
		sty.Color = opts.EntryLabelColor
	}
	return sty
}
