// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/polar/math32"
)

// Scanner returns a path scanner.
func (p Path) Scanner() *Scanner {
	return &Scanner{p, -1}
}

// Scanner scans the path.
type Scanner struct {
	p Path
	i int // i is at the end of the current command
}

// Scan scans a new path segment and should be called before the other methods.
func (s *Scanner) Scan() bool {
	if s.i+1 < len(s.p) {
		s.i += CmdLen(s.p[s.i+1])
		return true
	}
	return false
}

// Cmd returns the current path segment command.
func (s *Scanner) Cmd() float32 {
	return s.p[s.i]
}

// Index returns the index in path of the current command.
func (s *Scanner) Index() int {
	return (s.i - CmdLen(s.p[s.i])) + 1
}

// Values returns the current path segment values.
func (s *Scanner) Values() []float32 {
	return s.p[s.i-CmdLen(s.p[s.i])+2 : s.i]
}

// Start returns the current path segment start position.
func (s *Scanner) Start() math32.Vector2 {
	i := s.i - CmdLen(s.p[s.i])
	if i == -1 {
		return math32.Vector2{}
	}
	return math32.Vector2{X: s.p[i-2], Y: s.p[i-1]}
}

// Arc returns the arguments for arcs (cx,cy,r,theta0,delta).
func (s *Scanner) Arc() (float32, float32, float32, float32, float32) {
	if s.p[s.i] != ArcTo {
		panic("must be arc")
	}
	i := s.i - CmdLen(s.p[s.i]) + 1
	return s.p[i+1], s.p[i+2], s.p[i+3], s.p[i+4], s.p[i+5]
}

// ArcPoints returns points along the current arc, including both
// end points, spaced so that no chord deviates from the arc by more
// than tolerance.
func (s *Scanner) ArcPoints(tolerance float32) []math32.Vector2 {
	cx, cy, r, theta0, delta := s.Arc()
	n := ArcSegments(r, delta, tolerance)
	c := math32.Vec2(cx, cy)
	pts := make([]math32.Vector2, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, math32.FromPolar(c, r, theta0+delta*float32(i)/float32(n)))
	}
	pts[n] = s.End()
	return pts
}

// End returns the current path segment end position.
func (s *Scanner) End() math32.Vector2 {
	return math32.Vector2{X: s.p[s.i-2], Y: s.p[s.i-1]}
}
