// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import "fmt"

// FillRule is the algorithm to specify which area is to be filled
// and which not, in particular when multiple subpaths overlap.
// The NonZero rule is the default and will fill any point that is
// being enclosed by an unequal number of paths winding clock-wise
// and counter clock-wise, otherwise it will not be filled.
// The EvenOdd rule will fill any point that is being enclosed by
// an uneven number of paths, whichever their direction.
type FillRule int

// see FillRule
const (
	NonZero FillRule = iota
	EvenOdd
)

func (fillRule FillRule) Fills(windings int) bool {
	switch fillRule {
	case NonZero:
		return windings != 0
	case EvenOdd:
		return windings%2 != 0
	}
	return false
}

func (fillRule FillRule) String() string {
	switch fillRule {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	}
	return fmt.Sprintf("FillRule(%d)", fillRule)
}

// SVG returns the value of the svg fill-rule attribute.
func (fillRule FillRule) SVG() string {
	if fillRule == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}
