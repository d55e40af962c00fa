// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/polar/math32"
)

// Line adds a line segment of from (x1,y1) to (x2,y2).
func (p *Path) Line(x1, y1, x2, y2 float32) *Path {
	if Equal(x1, x2) && Equal(y1, y2) {
		return p
	}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Polyline adds multiple connected lines, with no final Close.
func (p *Path) Polyline(points ...math32.Vector2) *Path {
	sz := len(points)
	if sz < 2 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < sz; i++ {
		p.LineTo(points[i].X, points[i].Y)
	}
	return p
}

// Polygon adds multiple connected lines with a final Close.
func (p *Path) Polygon(points ...math32.Vector2) *Path {
	p.Polyline(points...)
	p.Close()
	return p
}

// Circle adds a closed circle at given center coordinates of radius r.
func (p *Path) Circle(cx, cy, r float32) *Path {
	if Equal(r, 0) {
		return p
	}
	p.MoveTo(cx+r, cy)
	p.Arc(cx, cy, r, 0, 2*math32.Pi)
	p.Close()
	return p
}

// Sector adds a closed circular sector (wedge) around (cx,cy) of radius r,
// starting at angle theta0 and sweeping delta radians, closed through apex.
func (p *Path) Sector(cx, cy, r, theta0, delta float32, apex math32.Vector2) *Path {
	start := math32.FromPolar(math32.Vec2(cx, cy), r, theta0)
	p.MoveTo(start.X, start.Y)
	p.Arc(cx, cy, r, theta0, delta)
	p.LineTo(apex.X, apex.Y)
	p.Close()
	return p
}
