// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/math32"
)

// SliceSpace returns the space in pixels to leave between the slices
// of the given data set, for data with the given sum of all values
// drawn in a viewport of the given size. A data set with at most one
// non-zero entry has no space. If the data set automatically disables
// slice spacing, the space is removed when it is large relative to
// the smallest value.
func SliceSpace(ds *chart.DataSet, valueSum float64, width, height float32) float64 {
	if ds.VisibleCount() <= 1 {
		return 0
	}
	space := ds.Space()
	if !ds.AutomaticallyDisableSliceSpacing {
		return space
	}
	size := min(width, height)
	if size <= 0 || !(valueSum > 0) {
		return 0
	}
	spaceSizeRatio := space / float64(size)
	minValueRatio := ds.YMin() / valueSum * 2
	if spaceSizeRatio > minValueRatio {
		return 0
	}
	return space
}

// SliceSpaceAngle returns the angle in degrees that spans
// the given slice space in pixels at the given radius.
func SliceSpaceAngle(space, radius float64) float64 {
	if space <= 0 || radius <= 0 {
		return 0
	}
	return space / (math32.DegToRadFactor * radius)
}

// MinimumRadiusForSpacedSlice returns the radius at which to put the
// inner vertex of a slice that has slice space, so that the gap to the
// neighboring slices has the same width along the whole slice.
// The slice has the given center and radius, and an angle of the given
// size before spacing. Its arc starts at arcStart, at startAngle,
// and sweeps by sweepAngle, all in degrees.
//
// The inner vertex is the apex of the isosceles triangle on the chord of
// the arc that keeps the original angle, moved inward by the sagitta of
// the arc. The result is never negative.
func MinimumRadiusForSpacedSlice(center math32.Vector2, radius float32, angle float64, arcStart math32.Vector2, startAngle, sweepAngle float64) float32 {
	middle := startAngle + sweepAngle/2
	arcEnd := math32.FromPolar(center, radius, deg32(startAngle+sweepAngle))
	arcMid := math32.FromPolar(center, radius, deg32(middle))

	chord := math32.NewLine2(arcStart, arcEnd)
	height := chord.Length() / 2 * math32.Tan(deg32((180-angle)/2))
	r := radius - height - chord.CenterDistanceTo(arcMid)
	if !(r > 0) {
		return 0
	}
	return r
}

// deg32 converts an angle in degrees to float32 radians.
func deg32(deg float64) float32 {
	return math32.DegToRad(float32(deg))
}
