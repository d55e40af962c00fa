// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCL space.
// This is useful, for example, for assigning colors to chart slices.
func Spaced(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	toffs := []float64{0, -10, 0, 5, 0, 0, 5, 0}
	tones := []float64{65, 80, 45, 65, 80}
	chromas := []float64{90, 90, 90, 20, 20}
	ncats := len(hues)
	ntc := len(tones)
	hi := idx % ncats
	hr := idx / ncats
	tci := hr % ntc
	hue := hues[hi]
	tone := toffs[hi] + tones[tci]
	chroma := chromas[tci]
	c := colorful.Hcl(hue, chroma/150, tone/100).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// SpacedPalette returns the first n colors of [Spaced].
func SpacedPalette(n int) []color.Color {
	p := make([]color.Color, n)
	for i := range p {
		p[i] = Spaced(i)
	}
	return p
}
