// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"slices"

	"cogentcore.org/polar/math32"
)

// Path is a collection of MoveTo, LineTo, ArcTo, and Close
// commands, each followed the float32 coordinate data for it.
// To enable support bidirectional processing, the command verb is also added
// to the end of the coordinate data as well.
// The last two coordinate values are the end point position of the pen after
// the action (x,y).
// ArcTo is stored in center form: (cx,cy,r,theta0,delta) where theta0 is
// the start angle and delta the signed sweep, both in radians, measured
// clockwise from the positive x axis in y-down coordinates.
type Path []float32

func New() *Path {
	return &Path{}
}

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	ArcTo  float32 = 2
	Close  float32 = 3
)

var cmdLens = [4]int{4, 4, 9, 4}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Reset clears the path but retains the same memory.
// This can be used in loops where you append and process
// paths every iteration, and avoid new memory allocations.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Empty returns true if p is an empty path or consists of only MoveTos and Closes.
func (p Path) Empty() bool {
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		if p[i] == LineTo || p[i] == ArcTo {
			return false
		}
	}
	return true
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p Path) Equals(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if !Equal(p[i], q[i]) {
			return false
		}
	}
	return true
}

// Sane returns true if the path is sane, ie. it does not have NaN or infinity values.
func (p Path) Sane() bool {
	for _, v := range p {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Closed returns true if the last subpath of p is a closed path.
func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1] == Close
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Pos returns the current position of the path,
// which is the end point of the last command.
func (p Path) Pos() math32.Vector2 {
	if 0 < len(p) {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath,
// i.e. it returns the position of the last MoveTo command.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// Bounds returns the bounding box of the points of the path,
// including the extreme points of any arcs.
func (p Path) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	for s := p.Scanner(); s.Scan(); {
		if s.Cmd() == ArcTo {
			for _, pt := range s.ArcPoints(PixelTolerance) {
				bb.ExpandByPoint(pt)
			}
			continue
		}
		bb.ExpandByPoint(s.End())
	}
	return bb
}

// MoveTo moves the path to (x,y) without connecting the path.
// It starts a new independent subpath. Multiple subsequent MoveTo commands
// are replaced by the last one.
func (p *Path) MoveTo(x, y float32) {
	if 0 < len(*p) && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// LineTo adds a linear path to (x,y). If the path is empty
// it is equivalent to MoveTo. Zero-length lines are dropped.
func (p *Path) LineTo(x, y float32) {
	if len(*p) == 0 {
		p.MoveTo(x, y)
		return
	}
	if EqualPoint(p.Pos(), math32.Vec2(x, y)) {
		return
	}
	*p = append(*p, LineTo, x, y, LineTo)
}

// Arc adds a circular arc around center (cx,cy) with radius r, starting at
// angle theta0 and sweeping by delta (both in radians). A line is first
// drawn from the current position to the arc start when they differ, or
// the path is moved there when it is empty.
func (p *Path) Arc(cx, cy, r, theta0, delta float32) {
	start := math32.FromPolar(math32.Vec2(cx, cy), r, theta0)
	if len(*p) == 0 || (*p)[len(*p)-1] == Close {
		p.MoveTo(start.X, start.Y)
	} else {
		p.LineTo(start.X, start.Y)
	}
	if Equal(delta, 0) || Equal(r, 0) {
		return
	}
	end := math32.FromPolar(math32.Vec2(cx, cy), r, theta0+delta)
	*p = append(*p, ArcTo, cx, cy, r, theta0, delta, end.X, end.Y, ArcTo)
}

// Close closes a (sub)path with a LineTo to the start of the path
// (the most recent MoveTo command).
func (p *Path) Close() {
	if len(*p) == 0 || (*p)[len(*p)-1] == Close {
		return
	}
	if (*p)[len(*p)-1] == MoveTo {
		*p = (*p)[:len(*p)-CmdLen(MoveTo)]
		return
	}
	start := p.StartPos()
	*p = append(*p, Close, start.X, start.Y, Close)
}

// Flatten returns the subpaths of p as polylines, with arcs approximated
// by line segments that deviate at most tolerance from the true arc.
// Each polyline starts at its subpath MoveTo and the boolean result reports
// whether that subpath was closed.
func (p Path) Flatten(tolerance float32) ([][]math32.Vector2, []bool) {
	var polys [][]math32.Vector2
	var closed []bool
	var cur []math32.Vector2
	flush := func(cl bool) {
		if 1 < len(cur) {
			polys = append(polys, cur)
			closed = append(closed, cl)
		}
		cur = nil
	}
	for s := p.Scanner(); s.Scan(); {
		switch s.Cmd() {
		case MoveTo:
			flush(false)
			cur = append(cur, s.End())
		case LineTo:
			cur = append(cur, s.End())
		case ArcTo:
			if len(cur) == 0 {
				cur = append(cur, s.Start())
			}
			cur = append(cur, s.ArcPoints(tolerance)[1:]...)
		case Close:
			cur = append(cur, s.End())
			flush(true)
		}
	}
	flush(false)
	return polys, closed
}
