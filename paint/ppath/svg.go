// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"strconv"
	"strings"

	"cogentcore.org/polar/math32"
)

// num formats f rounded to 1e-4, which is well below pixel resolution.
func num(f float32) string {
	f = math32.Round(f*1e4) / 1e4
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// ToSVG returns a string that represents the path in the SVG path data format.
// Arcs that sweep more than half a circle are split at their midpoint,
// so the large-arc flag is always 0 and full circles survive the endpoint
// arc parameterization.
func (p Path) ToSVG() string {
	if p.Empty() {
		return ""
	}
	sb := strings.Builder{}
	point := func(cmd string, v math32.Vector2) {
		sb.WriteString(cmd)
		sb.WriteString(num(v.X))
		sb.WriteString(" ")
		sb.WriteString(num(v.Y))
	}
	arc := func(r, delta float32, end math32.Vector2) {
		sweep := 0
		if 0 < delta {
			sweep = 1
		}
		sb.WriteString("A")
		sb.WriteString(num(r))
		sb.WriteString(" ")
		sb.WriteString(num(r))
		sb.WriteString(" 0 0 ")
		sb.WriteString(strconv.Itoa(sweep))
		point(" ", end)
	}
	for s := p.Scanner(); s.Scan(); {
		switch s.Cmd() {
		case MoveTo:
			point("M", s.End())
		case LineTo:
			point("L", s.End())
		case ArcTo:
			cx, cy, r, theta0, delta := s.Arc()
			if math32.Pi < math32.Abs(delta) {
				mid := math32.FromPolar(math32.Vec2(cx, cy), r, theta0+delta/2)
				arc(r, delta/2, mid)
				arc(r, delta/2, s.End())
				continue
			}
			arc(r, delta, s.End())
		case Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}
