// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image/color"
	"strings"
)

// Aligns specifies the horizontal alignment of text relative
// to its anchor position.
type Aligns int32

const (
	// AlignStart puts the left edge of the text at the anchor.
	AlignStart Aligns = iota

	// AlignCenter centers the text on the anchor.
	AlignCenter

	// AlignEnd puts the right edge of the text at the anchor.
	AlignEnd
)

func (a Aligns) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return fmt.Sprintf("Aligns(%d)", a)
}

// Font specifies the font used for text.
type Font struct {
	// Family is the font family name; renderers that cannot select
	// families use their default face.
	Family string `default:"sans-serif"`

	// Size is the font size in pixels.
	Size float32 `default:"13"`
}

// DefaultLineSpacing is the line height as a multiple of the font size,
// used when no font metrics are available.
const DefaultLineSpacing = 1.2

// LineHeight returns the default line height of the font,
// which is its size times [DefaultLineSpacing].
func (f Font) LineHeight() float32 {
	return f.Size * DefaultLineSpacing
}

// IsZero returns true if the font has not been set.
func (f Font) IsZero() bool {
	return f.Size == 0 && f.Family == ""
}

// TextStyle has the styling parameters for a [Text] item.
type TextStyle struct {
	Font  Font
	Color color.Color
	Align Aligns
}

// Lines splits text into its lines.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// Measurer provides font metrics. Image renderers implement it
// so that layout uses the same line height that is drawn.
type Measurer interface {
	LineHeight(f Font) float32
}
