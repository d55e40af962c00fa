// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"cogentcore.org/polar/base/tolassert"
	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
	"cogentcore.org/polar/paint/ppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(ys ...float64) []chart.Entry {
	es := make([]chart.Entry, len(ys))
	for i, y := range ys {
		es[i] = chart.Entry{Y: y}
	}
	return es
}

func labeled(labels ...string) []chart.Entry {
	es := make([]chart.Entry, len(labels))
	for i, lb := range labels {
		es[i] = chart.Entry{Y: 1, Label: lb}
	}
	return es
}

var printValue = chart.FormatterFunc(func(value float64, entry chart.Entry, dataSetIndex int, viewport math32.Vector2) string {
	return fmt.Sprint(value)
})

func assertVector(t *testing.T, expected, actual math32.Vector2, msgAndArgs ...any) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, 0.01, msgAndArgs...)
	tolassert.EqualTol(t, expected.Y, actual.Y, 0.01, msgAndArgs...)
}

func TestLayoutAngles(t *testing.T) {
	d := chart.NewData(
		chart.NewDataSet("a", entries(1, 2, 3)...),
		chart.NewDataSet("b", entries(4, 5)...),
		chart.NewDataSet("c", entries(6, 0, 7, 8, 9, 10, 11)...),
	)
	for _, mx := range []float64{360, 270, 90, 123.4} {
		l := ComputeLayout(d, mx, 100)
		require.Equal(t, 12, l.Len())
		sum := 0.0
		for i, s := range l.SweepAngles {
			sum += s
			if i > 0 {
				assert.GreaterOrEqual(t, l.AbsoluteAngles[i], l.AbsoluteAngles[i-1])
			}
		}
		assert.InDelta(t, mx, sum, 1e-6)
		assert.InDelta(t, mx, l.AbsoluteAngles[11], 1e-6)
		assert.Equal(t, []int{0, 3, 5}, l.Starts)
	}
}

func TestLayoutRadii(t *testing.T) {
	d := chart.NewData(chart.NewDataSet("a", entries(10, 20, 5)...))
	l := ComputeLayout(d, 360, 80)
	assert.Equal(t, []float64{40, 80, 20}, l.Radii)
	assert.Equal(t, []float64{120, 120, 120}, l.SweepAngles)
}

func TestLayoutRadiiPerDataSet(t *testing.T) {
	d := chart.NewData(
		chart.NewDataSet("a", entries(1, 2)...),
		chart.NewDataSet("b", entries(10, 40)...),
	)
	l := ComputeLayout(d, 360, 100)
	assert.Equal(t, []float64{50, 100, 25, 100}, l.Radii)
}

func TestLayoutZeroAndNegative(t *testing.T) {
	d := chart.NewData(
		chart.NewDataSet("zero", entries(0, 0)...),
		chart.NewDataSet("neg", entries(-3, -1)...),
		chart.NewDataSet("mixed", entries(-2, 4, 0)...),
	)
	l := ComputeLayout(d, 360, 100)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 100, 0}, l.Radii)
	for _, r := range l.Radii {
		assert.False(t, math.IsNaN(r))
	}
}

func TestLayoutNonFinite(t *testing.T) {
	d := chart.NewData(
		chart.NewDataSet("nan", entries(10, 20, math.NaN())...),
		chart.NewDataSet("inf", entries(10, math.Inf(1), 20, math.Inf(-1))...),
	)
	l := ComputeLayout(d, 360, 100)
	assert.Equal(t, []float64{50, 100, 0, 50, 0, 100, 0}, l.Radii)
}

func TestLayoutEmpty(t *testing.T) {
	l := ComputeLayout(nil, 360, 100)
	assert.Equal(t, 0, l.Len())
	l = ComputeLayout(chart.NewData(chart.NewDataSet("empty")), 360, 100)
	assert.Equal(t, 0, l.Len())
	_, ok := l.Index(0, 0)
	assert.False(t, ok)
	var nl *Layout
	assert.Equal(t, 0, nl.Len())
}

func TestLayoutPure(t *testing.T) {
	d := chart.NewData(chart.NewDataSet("a", entries(3, 1, 4, 1, 5)...), chart.NewDataSet("b", entries(9, 2, 6)...))
	a := ComputeLayout(d, 300, 77)
	b := ComputeLayout(d, 300, 77)
	assert.Equal(t, a, b)
	for i := range a.AbsoluteAngles {
		assert.Equal(t, math.Float64bits(a.AbsoluteAngles[i]), math.Float64bits(b.AbsoluteAngles[i]))
		assert.Equal(t, math.Float64bits(a.Radii[i]), math.Float64bits(b.Radii[i]))
	}
}

func TestLayoutIndex(t *testing.T) {
	d := chart.NewData(chart.NewDataSet("a", entries(1, 2)...), chart.NewDataSet("b"), chart.NewDataSet("c", entries(3)...))
	l := ComputeLayout(d, 360, 10)
	i, ok := l.Index(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = l.Index(1, 0)
	assert.False(t, ok)
	_, ok = l.Index(0, 2)
	assert.False(t, ok)
	_, ok = l.Index(3, 0)
	assert.False(t, ok)
	assert.Equal(t, 0.0, l.StartAngle(0))
	assert.Equal(t, 240.0, l.StartAngle(2))
}

func TestSliceSpaceSingleVisible(t *testing.T) {
	ds := chart.NewDataSet("a", entries(5, 0, 0)...)
	ds.SliceSpace = 10
	assert.Equal(t, 0.0, SliceSpace(ds, 5, 100, 100))
	ds.AutomaticallyDisableSliceSpacing = true
	assert.Equal(t, 0.0, SliceSpace(ds, 5, 100, 100))
}

func TestSliceSpaceAutomatic(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1, 9)...)
	ds.SliceSpace = 2
	ds.AutomaticallyDisableSliceSpacing = true
	// 2/100 = 0.02 is not more than 1/10*2 = 0.2
	assert.Equal(t, 2.0, SliceSpace(ds, 10, 100, 100))

	ds.SetEntries(entries(0.5, 9.5)...)
	ds.SliceSpace = 20
	// 20/100 = 0.2 is more than 0.5/10*2 = 0.1
	assert.Equal(t, 0.0, SliceSpace(ds, 10, 100, 100))

	ds.AutomaticallyDisableSliceSpacing = false
	assert.Equal(t, 20.0, SliceSpace(ds, 10, 100, 100))
	assert.Equal(t, 20.0, SliceSpace(ds, 0, 0, 0))

	ds.SliceSpace = 50
	assert.Equal(t, chart.MaxSliceSpace, SliceSpace(ds, 10, 100, 100))

	ds.AutomaticallyDisableSliceSpacing = true
	assert.Equal(t, 0.0, SliceSpace(ds, 10, 0, 100))
	assert.Equal(t, 0.0, SliceSpace(ds, 0, 100, 100))
}

func TestSliceSpaceAngle(t *testing.T) {
	assert.InDelta(t, 1.0, SliceSpaceAngle(math.Pi, 180), 1e-12)
	assert.Equal(t, 0.0, SliceSpaceAngle(2, 0))
	assert.Equal(t, 0.0, SliceSpaceAngle(0, 100))
}

func TestMinimumRadiusForSpacedSlice(t *testing.T) {
	center := math32.Vec2(0, 0)

	// without spacing, the apex of the slice is at the center
	r := MinimumRadiusForSpacedSlice(center, 100, 90, math32.Vec2(100, 0), 0, 90)
	tolassert.EqualTol(t, 0, r, 0.01)

	// a 90 degree slice spaced down to 80 degrees: the chord is at
	// 100*cos(40) from the center and the triangle on it with a
	// 90 degree apex has a height of 100*sin(40)
	start := math32.FromPolar(center, 100, math32.DegToRad(5))
	r = MinimumRadiusForSpacedSlice(center, 100, 90, start, 5, 80)
	want := 100 * (math.Cos(40*math.Pi/180) - math.Sin(40*math.Pi/180))
	tolassert.EqualTol(t, float32(want), r, 0.01)

	// the result does not depend on the center or rotation
	c2 := math32.Vec2(50, -20)
	start = math32.FromPolar(c2, 100, math32.DegToRad(185))
	r2 := MinimumRadiusForSpacedSlice(c2, 100, 90, start, 185, 80)
	tolassert.EqualTol(t, r, r2, 0.01)

	// never negative
	start = math32.FromPolar(center, 100, math32.DegToRad(1))
	assert.Equal(t, float32(0), MinimumRadiusForSpacedSlice(center, 100, 10, start, 1, 170))
}

func TestOutsideAlign(t *testing.T) {
	tests := []struct {
		angle float64
		align paint.Aligns
		dir   float32
	}{
		{45, paint.AlignStart, 1},
		{200, paint.AlignEnd, -1},
		{90, paint.AlignEnd, -1},
		{270, paint.AlignEnd, -1},
		{89.9, paint.AlignStart, 1},
		{270.1, paint.AlignStart, 1},
		{-90, paint.AlignEnd, -1},
		{405, paint.AlignStart, 1},
		{540, paint.AlignEnd, -1},
		{360, paint.AlignStart, 1},
	}
	for _, tt := range tests {
		align, dir := OutsideAlign(tt.angle)
		assert.Equal(t, tt.align, align, "angle %v", tt.angle)
		assert.Equal(t, tt.dir, dir, "angle %v", tt.angle)
	}
}

// newTestChart returns a chart of the given data sets for a
// 200x200 viewport, which has a radius of 82 and center (100,100).
func newTestChart(sets ...*chart.DataSet) *Chart {
	return NewChart(chart.NewData(sets...))
}

var viewport = math32.Vec2(200, 200)

func TestPlaceLabelsInside(t *testing.T) {
	ds := chart.NewDataSet("a", chart.Entry{Y: 10, Label: "a"}, chart.Entry{Y: 20, Label: "b"})
	ds.ValueFormatter = printValue
	ch := newTestChart(ds)
	rc := ch.RenderContext(viewport)
	assert.Equal(t, float32(82), rc.Radius)

	pls := PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 2)

	pl := pls[0]
	assert.InDelta(t, 360, pl.Angle, 1e-9)
	assert.Nil(t, pl.Line)
	require.Len(t, pl.Texts, 2)
	assert.Equal(t, "10", pl.Texts[0].Text)
	assertVector(t, math32.Vec2(128.7, 100-15.6), pl.Texts[0].Position)
	assert.Equal(t, paint.AlignCenter, pl.Texts[0].Style.Align)
	assert.Equal(t, colors.Black, pl.Texts[0].Style.Color)
	assert.Equal(t, "a", pl.Texts[1].Text)
	assertVector(t, math32.Vec2(128.7, 100), pl.Texts[1].Position)
	assert.Equal(t, colors.White, pl.Texts[1].Style.Color)

	pl = pls[1]
	assert.InDelta(t, 540, pl.Angle, 1e-9)
	assertVector(t, math32.Vec2(100-57.4, 100-15.6), pl.Texts[0].Position)
}

func TestPlaceLabelsOutside(t *testing.T) {
	ds := chart.NewDataSet("a", labeled("n", "e", "s", "w")...)
	ds.ValueFormatter = printValue
	ds.XValuePosition = chart.OutsideSlice
	ds.YValuePosition = chart.OutsideSlice
	ch := newTestChart(ds)
	ch.Options.Rotation = 0
	rc := ch.RenderContext(viewport)
	pls := PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 4)

	labelRadius := float32(82 * 0.7)
	s45 := float32(math.Sqrt2 / 2)

	pl := pls[0]
	assert.InDelta(t, 45, pl.Angle, 1e-9)
	assert.Equal(t, paint.AlignStart, pl.Align)
	require.Len(t, pl.Line, 3)
	assertVector(t, math32.Vec2(100+82*0.75*s45, 100+82*0.75*s45), pl.Line[0])
	assertVector(t, math32.Vec2(100+labelRadius*1.3*s45, 100+labelRadius*1.3*s45), pl.Line[1])
	tolassert.EqualTol(t, labelRadius*0.4*s45, pl.Line[2].X-pl.Line[1].X, 0.01)
	assert.Equal(t, pl.Line[1].Y, pl.Line[2].Y)
	assert.Equal(t, colors.Black, pl.LineColor)
	require.Len(t, pl.Texts, 2)
	assertVector(t, math32.Vec2(pl.Line[2].X+5, pl.Line[2].Y-15.6), pl.Texts[0].Position)
	assertVector(t, math32.Vec2(pl.Line[2].X+5, pl.Line[2].Y), pl.Texts[1].Position)
	assert.Equal(t, paint.AlignStart, pl.Texts[1].Style.Align)

	pl = pls[2]
	assert.InDelta(t, 225, pl.Angle, 1e-9)
	assert.Equal(t, paint.AlignEnd, pl.Align)
	assert.Less(t, pl.Line[2].X, pl.Line[1].X)
	assertVector(t, math32.Vec2(pl.Line[2].X-5, pl.Line[2].Y-15.6), pl.Texts[0].Position)
	assert.Equal(t, paint.AlignEnd, pl.Texts[0].Style.Align)
}

func TestPlaceLabelsFixedLength(t *testing.T) {
	ds := chart.NewDataSet("a", labeled("n", "e", "s", "w")...)
	ds.XValuePosition = chart.OutsideSlice
	ds.ValueLineVariableLength = false
	ch := newTestChart(ds)
	ch.Options.Rotation = 0
	rc := ch.RenderContext(viewport)
	pls := PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 4)
	tolassert.EqualTol(t, 82*0.7*0.4, pls[0].Line[2].X-pls[0].Line[1].X, 0.01)
}

func TestPlaceLabelsSingleText(t *testing.T) {
	ds := chart.NewDataSet("a", labeled("n", "e", "s", "w")...)
	ds.ValueFormatter = printValue
	ds.YValuePosition = chart.OutsideSlice
	ch := newTestChart(ds)
	ch.Options.Rotation = 0
	rc := ch.RenderContext(viewport)
	pls := PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 4)

	// the value is outside and the label inside, each half a line down
	pl := pls[0]
	require.Len(t, pl.Texts, 2)
	assert.Equal(t, "1", pl.Texts[0].Text)
	assertVector(t, math32.Vec2(pl.Line[2].X+5, pl.Line[2].Y-15.6/2), pl.Texts[0].Position)
	assert.Equal(t, "n", pl.Texts[1].Text)
	assert.Equal(t, paint.AlignCenter, pl.Texts[1].Style.Align)

	ch.Options.DrawEntryLabels = false
	pls = PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 4)
	require.Len(t, pls[0].Texts, 1)
	assert.Equal(t, "1", pls[0].Texts[0].Text)
}

func TestPlaceLabelsNoFormatter(t *testing.T) {
	ds := chart.NewDataSet("a", labeled("n", "", "s")...)
	ch := newTestChart(ds)
	rc := ch.RenderContext(viewport)
	pls := PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 2)
	for _, pl := range pls {
		require.Len(t, pl.Texts, 1)
		assert.NotEmpty(t, pl.Texts[0].Text)
	}

	ch.Options.DrawEntryLabels = false
	pls = PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	assert.Empty(t, pls)
}

func TestPlaceLabelsPercent(t *testing.T) {
	ds := chart.NewDataSet("a", entries(10, 30)...)
	ds.ValueFormatter = printValue
	ch := newTestChart(ds, chart.NewDataSet("b", entries(60)...))
	ch.Options.UsePercentValues = true
	rc := ch.RenderContext(viewport)
	pls := PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 2)
	assert.Equal(t, "10", pls[0].Texts[0].Text)
	assert.Equal(t, "30", pls[1].Texts[0].Text)
}

func TestPlaceLabelsNonFinite(t *testing.T) {
	ds := chart.NewDataSet("a", entries(10, math.NaN(), 30)...)
	ds.ValueFormatter = printValue
	ch := newTestChart(ds)
	ch.Options.UsePercentValues = true
	rc := ch.RenderContext(viewport)
	pls := PlaceLabels(ch.Data, ch.Layout(rc.Radius), rc, &ch.Options, paint.NewPainter(nil))
	require.Len(t, pls, 2)
	assert.Equal(t, 0, pls[0].Entry)
	assert.Equal(t, "25", pls[0].Texts[0].Text)
	assert.Equal(t, 2, pls[1].Entry)
	assert.Equal(t, "75", pls[1].Texts[0].Text)
}

func TestEntryLabelStyle(t *testing.T) {
	opts := NewOptions()
	ds := chart.NewDataSet("a")
	value := paint.TextStyle{Font: paint.Font{Size: 20}, Color: colors.Gray}

	sty := entryLabelStyle(ds, opts, value)
	assert.Equal(t, opts.EntryLabelFont, sty.Font)
	assert.Equal(t, colors.White, sty.Color)

	ds.EntryLabelFont = &paint.Font{Size: 9}
	ds.EntryLabelColor = colors.DarkGray
	sty = entryLabelStyle(ds, opts, value)
	assert.Equal(t, float32(9), sty.Font.Size)
	assert.Equal(t, colors.DarkGray, sty.Color)

	ds.EntryLabelFont = nil
	ds.EntryLabelColor = nil
	opts.EntryLabelFont = paint.Font{}
	opts.EntryLabelColor = nil
	assert.Equal(t, value, entryLabelStyle(ds, opts, value))
}

// kinds returns the kinds of the items of the render.
func kinds(rd paint.Render) []string {
	ks := make([]string, len(rd))
	for i, it := range rd {
		switch it.(type) {
		case *paint.Path:
			ks[i] = "path"
		case *paint.Text:
			ks[i] = "text"
		case *paint.ClipEllipse:
			ks[i] = "clip"
		case *paint.ContextPush:
			ks[i] = "push"
		case *paint.ContextPop:
			ks[i] = "pop"
		}
	}
	return ks
}

func paths(rd paint.Render) []*paint.Path {
	var ps []*paint.Path
	for _, it := range rd {
		if p, ok := it.(*paint.Path); ok {
			ps = append(ps, p)
		}
	}
	return ps
}

func TestDrawPassOrder(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1, 2, 3)...)
	ds.DrawValues = false
	ds.HighlightColor = colors.Gray
	ch := newTestChart(ds)
	ch.Options.DrawEntryLabels = false
	ch.Options.CenterText = "hi"
	ch.Highlights = chart.Highlights{{DataSet: 0, Entry: 1}, {DataSet: 4, Entry: 0}}

	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	rd := pc.RenderDone()
	assert.Equal(t, []string{
		"push", "path", "path", "pop",
		"push", "path", "pop",
		"push", "push", "clip", "text", "pop", "pop",
		"push", "pop",
	}, kinds(rd))

	ps := paths(rd)
	assert.Equal(t, ds.Color(0), ps[0].Style.Fill)
	assert.Equal(t, ds.Color(2), ps[1].Style.Fill)
	assert.Equal(t, ppath.EvenOdd, ps[0].Style.FillRule)
	assert.Equal(t, colors.Gray, ps[2].Style.Fill)

	// the highlighted slice, from 30 to 150 degrees,
	// extends by the selection shift
	b := ps[2].Path.Bounds()
	tolassert.EqualTol(t, 100, b.Min.Y, 0.01)
	tolassert.EqualTol(t, 100+82.0*2/3+18, b.Max.Y, 0.15)
}

func TestDrawSkipsZeroEntries(t *testing.T) {
	ds := chart.NewDataSet("a", entries(0, 1, 1)...)
	ds.DrawValues = false
	ch := newTestChart(ds)
	ch.Options.Rotation = 0
	ch.Options.DrawEntryLabels = false

	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	ps := paths(pc.RenderDone())
	require.Len(t, ps, 2)
	center := math32.Vec2(100, 100)
	assertVector(t, math32.FromPolar(center, 82, math32.DegToRad(120)), ps[0].Path.StartPos())
	assertVector(t, math32.FromPolar(center, 82, math32.DegToRad(240)), ps[1].Path.StartPos())

	ch.PhaseX = 0.5
	ch.Draw(pc, viewport)
	ps = paths(pc.RenderDone())
	require.Len(t, ps, 2)
	assertVector(t, math32.FromPolar(center, 82, math32.DegToRad(60)), ps[0].Path.StartPos())
	assertVector(t, math32.FromPolar(center, 82, math32.DegToRad(120)), ps[1].Path.StartPos())
}

func TestDrawHiddenDataSetAdvancesAngle(t *testing.T) {
	hidden := chart.NewDataSet("hidden", entries(1, 1)...)
	hidden.Visible = false
	ds := chart.NewDataSet("a", entries(1, 1)...)
	ds.DrawValues = false
	ch := newTestChart(hidden, ds)
	ch.Options.Rotation = 0
	ch.Options.DrawEntryLabels = false

	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	ps := paths(pc.RenderDone())
	require.Len(t, ps, 2)
	assertVector(t, math32.FromPolar(math32.Vec2(100, 100), 82, math32.DegToRad(180)), ps[0].Path.StartPos())
}

func TestDrawSpacedSlices(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1, 1, 1, 1)...)
	ds.DrawValues = false
	ds.SliceSpace = 10
	ch := newTestChart(ds)
	ch.Options.Rotation = 0
	ch.Options.DrawEntryLabels = false

	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	ps := paths(pc.RenderDone())
	require.Len(t, ps, 4)
	spaceAngle := SliceSpaceAngle(10, 82)
	start := math32.FromPolar(math32.Vec2(100, 100), 82, math32.DegToRad(float32(spaceAngle/2)))
	assertVector(t, start, ps[0].Path.StartPos())

	// the inner vertex is moved off the center along the bisector
	polys, _ := ps[0].Path.Flatten(ppath.PixelTolerance)
	require.Len(t, polys, 1)
	inner := polys[0][len(polys[0])-2]
	assert.Greater(t, inner.X, float32(100))
	tolassert.EqualTol(t, inner.X-100, inner.Y-100, 0.01)
}

func TestDrawTransparentCircle(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1, 2)...)
	ds.DrawValues = false
	ch := newTestChart(ds)
	ch.Options.DrawEntryLabels = false
	ch.Options.DrawTransparentCircle = true

	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	ps := paths(pc.RenderDone())
	require.Len(t, ps, 3)
	circle := ps[2]
	assert.Equal(t, ppath.NonZero, circle.Style.FillRule)
	assert.Equal(t, colors.WithAlpha(colors.White, 105), circle.Style.Fill)
	b := circle.Path.Bounds()
	tolassert.EqualTol(t, 82*0.55*2, b.Size().X, 0.25)
}

func TestDrawCenterText(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1)...)
	ds.DrawValues = false
	ch := NewChart(chart.NewData(ds))
	ch.Options.DrawEntryLabels = false
	ch.Options.CenterText = "a\nb\nc"
	ch.Options.CenterTextOffset = math32.Vec2(0, 10)

	// radius 22, so 44 pixels high fits two lines of 15.6
	vp := math32.Vec2(80, 80)
	pc := paint.NewPainter(nil)
	ch.Draw(pc, vp)
	rd := pc.RenderDone()
	var clip *paint.ClipEllipse
	var text *paint.Text
	for _, it := range rd {
		switch x := it.(type) {
		case *paint.ClipEllipse:
			clip = x
		case *paint.Text:
			text = x
		}
	}
	require.NotNil(t, clip)
	require.NotNil(t, text)
	assert.Equal(t, math32.B2(18, 28, 62, 72), clip.Bounds)
	assert.Equal(t, "a\nb", text.Text)
	assert.Equal(t, paint.AlignCenter, text.Style.Align)
	assertVector(t, math32.Vec2(40, 50-15.6), text.Position)

	ch.Options.DrawCenterText = false
	ch.Draw(pc, vp)
	assert.NotContains(t, kinds(pc.RenderDone()), "clip")
}

func TestDrawCenterTextWholeCircle(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1)...)
	ds.DrawValues = false
	ch := NewChart(chart.NewData(ds))
	ch.Options.DrawEntryLabels = false
	ch.Options.CenterText = "a\nb\nc"
	ch.Options.CenterTextRadiusPercent = 0

	pc := paint.NewPainter(nil)
	ch.Draw(pc, math32.Vec2(80, 80))
	var text *paint.Text
	for _, it := range pc.RenderDone() {
		if x, ok := it.(*paint.Text); ok {
			text = x
		}
	}
	require.NotNil(t, text)
	assert.Equal(t, "a\nb", text.Text)
	assertVector(t, math32.Vec2(40, 40-15.6), text.Position)
}

func TestDrawDuplicateHighlights(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1, 2, 3)...)
	ds.DrawValues = false
	ds.HighlightColor = colors.WithAlpha(colors.Gray, 128)
	ch := newTestChart(ds)
	ch.Options.DrawEntryLabels = false
	ch.Highlights = chart.Highlights{{DataSet: 0, Entry: 1}, {DataSet: 0, Entry: 1}}

	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	ps := paths(pc.RenderDone())
	require.Len(t, ps, 3)
	assert.Equal(t, ds.HighlightColor, ps[2].Style.Fill)
}

// fillCounter is a canvas that counts fills, and the fills
// made without any path.
type fillCounter struct {
	*paint.Painter
	building bool
	fills    int
	empty    int
}

func (fc *fillCounter) MoveTo(x, y float32) {
	fc.building = true
	fc.Painter.MoveTo(x, y)
}

func (fc *fillCounter) Fill(c color.Color, rule ppath.FillRule) {
	fc.fills++
	if !fc.building {
		fc.empty++
	}
	fc.building = false
	fc.Painter.Fill(c, rule)
}

func TestDrawFillsOnlyBuiltSlices(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1, -1, math.NaN(), 2)...)
	ds.DrawValues = false
	ch := newTestChart(ds)
	ch.Options.DrawEntryLabels = false
	ch.Highlights = chart.Highlights{{DataSet: 0, Entry: 1}}

	fc := &fillCounter{Painter: paint.NewPainter(nil)}
	ch.Draw(fc, viewport)
	assert.Equal(t, 2, fc.fills)
	assert.Equal(t, 0, fc.empty)
	assert.Len(t, paths(fc.RenderDone()), 2)
}

func TestDrawEmpty(t *testing.T) {
	pc := paint.NewPainter(nil)
	NewChart(nil).Draw(pc, viewport)
	NewChart(chart.NewData(chart.NewDataSet("a"))).Draw(pc, viewport)
	NewRenderer(NewOptions()).Draw(pc, nil, ComputeLayout(nil, 360, 10), &RenderContext{})
	assert.Empty(t, pc.RenderDone())
}

func TestDrawValues(t *testing.T) {
	ds := chart.NewDataSet("a", labeled("x", "y")...)
	ds.ValueFormatter = printValue
	ds.YValuePosition = chart.OutsideSlice
	ch := newTestChart(ds)

	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	rd := pc.RenderDone()
	var strokes, texts int
	for _, it := range rd {
		switch x := it.(type) {
		case *paint.Path:
			if x.Style.Stroke != nil {
				strokes++
			}
		case *paint.Text:
			texts++
		}
	}
	assert.Equal(t, 2, strokes)
	assert.Equal(t, 4, texts)

	ds.ValueLineColor = nil
	ch.Draw(pc, viewport)
	strokes = 0
	for _, p := range paths(pc.RenderDone()) {
		if p.Style.Stroke != nil {
			strokes++
		}
	}
	assert.Equal(t, 0, strokes)
}

func TestChartLayoutCache(t *testing.T) {
	ds := chart.NewDataSet("a", entries(1, 2)...)
	ch := newTestChart(ds)
	pc := paint.NewPainter(nil)
	ch.Draw(pc, viewport)
	ch.Draw(pc, viewport)
	assert.Equal(t, 1, ch.layoutCount)
	l := ch.Layout(82)
	assert.Same(t, l, ch.Layout(82))

	ds.AddEntry(chart.Entry{Y: 3})
	ch.Draw(pc, viewport)
	assert.Equal(t, 2, ch.layoutCount)
	assert.Equal(t, 3, ch.layout.Len())

	ch.Options.MaxAngle = 180
	ch.Draw(pc, viewport)
	assert.Equal(t, 3, ch.layoutCount)
	assert.Equal(t, 180.0, ch.layout.MaxAngle)

	ch.Options.MaxAngle = 10
	ch.Draw(pc, viewport)
	assert.Equal(t, 4, ch.layoutCount)
	assert.Equal(t, MinMaxAngle, ch.layout.MaxAngle)

	ch.Draw(pc, math32.Vec2(300, 300))
	assert.Equal(t, 5, ch.layoutCount)
	assert.Equal(t, 132.0, ch.layout.Radius)

	ch.Data = chart.NewData(chart.NewDataSet("b", entries(1, 2, 3)...))
	ch.Draw(pc, math32.Vec2(300, 300))
	assert.Equal(t, 6, ch.layoutCount)
}

func TestChartRequire(t *testing.T) {
	ch := newTestChart()
	assert.Equal(t, chart.Polar, ch.Kind())
	assert.NoError(t, ch.Require(chart.RadialValues))
	err := ch.Require(chart.YAxis)
	assert.ErrorIs(t, err, chart.ErrUnsupported)
}

func TestMarkerPosition(t *testing.T) {
	ch := newTestChart(chart.NewDataSet("a", entries(1, 2, 3, 4)...))
	vp := math32.Vec2(236, 236)
	p, ok := ch.MarkerPosition(chart.Highlight{DataSet: 0, Entry: 0}, vp)
	require.True(t, ok)
	center := math32.Vec2(118, 118)
	assertVector(t, math32.FromPolar(center, 64, math32.DegToRad(315)), p)

	ch.Options.DrawHole = true
	p, _ = ch.MarkerPosition(chart.Highlight{DataSet: 0, Entry: 1}, vp)
	assertVector(t, math32.FromPolar(center, 75, math32.DegToRad(45)), p)

	_, ok = ch.MarkerPosition(chart.Highlight{DataSet: 0, Entry: 4}, vp)
	assert.False(t, ok)
}

func TestCircleBox(t *testing.T) {
	assert.Equal(t, math32.B2(60, 10, 140, 90), CircleBox(math32.Vec2(200, 100), 10))
	assert.Equal(t, math32.B2(50, 50, 50, 50), CircleBox(math32.Vec2(100, 100), 80))
	assert.Equal(t, math32.B2(0, 0, 0, 0), CircleBox(math32.Vec2(0, 0), 0))
}

func TestRenderContext(t *testing.T) {
	d := chart.NewData(chart.NewDataSet("a", entries(1, 2)...))
	rc := NewRenderContext(d, NewOptions(), viewport)
	assert.Equal(t, math32.Vec2(100, 100), rc.Center)
	assert.Equal(t, float32(82), rc.Radius)
	assert.Equal(t, 270.0, rc.Rotation)
	assert.Equal(t, 3.0, rc.ValueSum)
	rc.SetPhases(-1, 2)
	assert.Equal(t, 0.0, rc.PhaseX)
	assert.Equal(t, 1.0, rc.PhaseY)
	rc.SetPhases(math.NaN(), 0.25)
	assert.Equal(t, 0.0, rc.PhaseX)
	assert.Equal(t, 0.25, rc.PhaseY)
}

func TestOptions(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, 360.0, o.MaxAngle)
	assert.Equal(t, 270.0, o.Rotation)
	assert.True(t, o.DrawCenterText)
	assert.True(t, o.DrawEntryLabels)
	assert.False(t, o.DrawTransparentCircle)
	assert.Equal(t, 1.0, o.CenterTextRadiusPercent)
	assert.Equal(t, 0.5, o.HoleRadiusPercent)
	assert.Equal(t, 0.55, o.TransparentCircleRadiusPercent)
	assert.Equal(t, paint.Font{Family: "sans-serif", Size: 13}, o.EntryLabelFont)
	assert.Equal(t, colors.White, o.EntryLabelColor)

	assert.Equal(t, 90.0, ClampMaxAngle(30))
	assert.Equal(t, 360.0, ClampMaxAngle(400))
	assert.Equal(t, 180.0, ClampMaxAngle(180))
	assert.Equal(t, 360.0, ClampMaxAngle(math.NaN()))
}
