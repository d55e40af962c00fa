// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"math"

	"cogentcore.org/polar/chart"
)

// Layout is the angle and radius of every entry of chart data,
// indexed in traversal order: the entries of each data set in turn.
// Angles are in degrees.
type Layout struct {

	// MaxAngle is the total angle that the layout covers.
	MaxAngle float64

	// Radius is the outer radius that entry radii are scaled to.
	Radius float64

	// SweepAngles are the angular widths of the entries,
	// which are all the same.
	SweepAngles []float64

	// AbsoluteAngles are the angles at which each entry ends,
	// relative to the start of the first entry.
	AbsoluteAngles []float64

	// Radii are the radii of the entries, scaled so that the
	// largest value in each data set has the full Radius.
	Radii []float64

	// Starts are the indexes of the first entry of each data set.
	Starts []int
}

// ComputeLayout returns the layout of the given data over the given
// total angle in degrees, with entry radii scaled to the given outer
// radius. Every entry gets the same sweep angle. The layout depends
// only on its arguments. Empty data gives an empty layout.
func ComputeLayout(d *chart.Data, maxAngle, radius float64) *Layout {
	l := &Layout{MaxAngle: maxAngle, Radius: radius}
	n := d.EntryCount()
	if n == 0 {
		return l
	}
	sweep := maxAngle / float64(n)
	l.SweepAngles = make([]float64, n)
	l.AbsoluteAngles = make([]float64, n)
	l.Radii = make([]float64, n)
	l.Starts = make([]int, d.Len())
	i := 0
	for di, ds := range d.DataSets() {
		l.Starts[di] = i
		mx := ds.YMax()
		for _, e := range ds.Entries() {
			l.SweepAngles[i] = sweep
			l.AbsoluteAngles[i] = float64(i+1) * sweep
			l.Radii[i] = scaleRadius(e.Y, mx, radius)
			i++
		}
	}
	return l
}

// scaleRadius returns the radius for value y in a data set with
// maximum value mx. Values that are not positive and data sets
// without a positive maximum give 0.
func scaleRadius(y, mx, radius float64) float64 {
	if !(y > 0) || !(mx > 0) {
		return 0
	}
	r := y / mx * radius
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Len returns the number of entries in the layout.
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.SweepAngles)
}

// Index returns the layout index of the given entry of the given data
// set, and whether it is in the layout.
func (l *Layout) Index(dataSet, entry int) (int, bool) {
	if l == nil || dataSet < 0 || dataSet >= len(l.Starts) || entry < 0 {
		return 0, false
	}
	end := len(l.SweepAngles)
	if dataSet+1 < len(l.Starts) {
		end = l.Starts[dataSet+1]
	}
	i := l.Starts[dataSet] + entry
	if i >= end {
		return 0, false
	}
	return i, true
}

// StartAngle returns the angle at which the entry with the given
// layout index starts, relative to the start of the first entry.
func (l *Layout) StartAngle(i int) float64 {
	if i <= 0 || i > len(l.AbsoluteAngles) {
		return 0
	}
	return l.AbsoluteAngles[i-1]
}
