// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/polar/math32"
)

var (
	// PixelTolerance is the maximum deviation of the rasterized path from
	// the original for flattening purposed in pixels.
	PixelTolerance = float32(0.1)

	//	In C, FLT_EPSILON = 1.19209e-07

	// Epsilon is the smallest number below which we assume the value to be zero.
	// This is to avoid numerical floating point issues.
	Epsilon = float32(1e-7)
)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// AngleNorm returns the angle theta in the range [0,2PI).
func AngleNorm(theta float32) float32 {
	theta = math32.Mod(theta, 2.0*math32.Pi)
	if theta < 0.0 {
		theta += 2.0 * math32.Pi
	}
	return theta
}

// ArcSegments returns the number of line segments needed to approximate
// an arc of radius r sweeping delta radians, such that the sagitta of
// every segment is at most tolerance. It is always at least 1.
func ArcSegments(r, delta, tolerance float32) int {
	delta = math32.Abs(delta)
	if r <= tolerance || delta == 0 {
		return 1
	}
	// sagitta = r*(1-cos(step/2))
	step := 2 * math32.Acos(1-tolerance/r)
	n := int(math32.Ceil(delta / step))
	return max(n, 1)
}
