// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"image/color"
	"math"

	"cogentcore.org/polar/base/errors"
	"cogentcore.org/polar/base/reflectx"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
)

// The range of the total angle covered by a chart, in degrees.
const (
	MinMaxAngle = 90.0
	MaxMaxAngle = 360.0
)

// Options are the chart-level options of a polar area chart.
// Per data set options are on [chart.DataSet].
type Options struct {

	// MaxAngle is the total angle covered by the slices, in degrees.
	// It is clamped to [MinMaxAngle, MaxMaxAngle] when used.
	MaxAngle float64 `default:"360"`

	// Rotation is the angle in degrees at which the first slice
	// starts, clockwise from the positive x axis. The default
	// of 270 starts at the top.
	Rotation float64 `default:"270"`

	// UsePercentValues draws values as a percent of the total
	// of all values instead of the values themselves.
	UsePercentValues bool

	// DrawCenterText is whether the center text is drawn.
	DrawCenterText bool `default:"true"`

	// CenterText is the text drawn in the center of the chart,
	// which may have multiple lines.
	CenterText string

	// CenterTextOffset is added to the center of the chart
	// to get the center of the center text.
	CenterTextOffset math32.Vector2

	// CenterTextRadiusPercent is the size of the box that the
	// center text is centered in, as a fraction of the chart radius.
	CenterTextRadiusPercent float64 `default:"1"`

	// CenterTextStyle is the style of the center text.
	// Its alignment is always centered.
	CenterTextStyle paint.TextStyle

	// DrawHole is whether the chart is treated as having a hole
	// in its center, which moves the highlight markers outward.
	DrawHole bool

	// HoleRadiusPercent is the radius of the hole,
	// as a fraction of the chart radius.
	HoleRadiusPercent float64 `default:"0.5"`

	// DrawEntryLabels is whether entry labels are drawn.
	DrawEntryLabels bool `default:"true"`

	// EntryLabelColor is the default color of entry labels.
	// If nil, the value text color is used.
	EntryLabelColor color.Color

	// EntryLabelFont is the default font of entry labels.
	// If zero, the value font is used.
	EntryLabelFont paint.Font

	// DrawTransparentCircle is whether a translucent circle is drawn
	// over the center of the chart.
	DrawTransparentCircle bool

	// TransparentCircleColor is the color of the transparent circle.
	TransparentCircleColor color.Color

	// TransparentCircleRadiusPercent is the radius of the transparent
	// circle, as a fraction of the chart radius.
	TransparentCircleRadiusPercent float64 `default:"0.55"`
}

// NewOptions returns new options with defaults set.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Defaults sets the default option values.
func (o *Options) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(o))
	o.CenterTextStyle.Color = colors.Black
	o.CenterTextStyle.Align = paint.AlignCenter
	o.EntryLabelColor = colors.White
	o.TransparentCircleColor = colors.WithAlpha(colors.White, 105)
}

// Angle returns the clamped [Options.MaxAngle].
func (o *Options) Angle() float64 {
	return ClampMaxAngle(o.MaxAngle)
}

// ClampMaxAngle clamps a total chart angle to [MinMaxAngle, MaxMaxAngle].
// An angle that is not a number is treated as [MaxMaxAngle].
func ClampMaxAngle(a float64) float64 {
	if math.IsNaN(a) {
		return MaxMaxAngle
	}
	return math32.Clamp(a, MinMaxAngle, MaxMaxAngle)
}
