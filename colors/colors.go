// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color helpers for charts: hex conversion,
// RGBA normalization and a maximally spaced palette.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Standard colors used as chart defaults.
var (
	Transparent = color.RGBA{}
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	DarkGray    = color.RGBA{64, 64, 64, 255}
	Gray        = color.RGBA{128, 128, 128, 255}
)

// AsRGBA returns the given color as an RGBA color (alpha-premultiplied).
// A nil color is returned as [Transparent].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return Transparent
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// WithAlpha returns the given color with the given alpha value
// in the range 0-255, keeping it alpha-premultiplied.
func WithAlpha(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return AsRGBA(n)
}

// IsNil returns whether the color is nil or fully transparent,
// in which case nothing needs to be painted with it.
func IsNil(c color.Color) bool {
	if c == nil {
		return true
	}
	return AsRGBA(c).A == 0
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, without alpha if it is fully opaque (#rrggbb or #rrggbbaa).
func AsHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// FromHex parses the given hex color string: #rgb, #rrggbb or #rrggbbaa,
// with the leading # optional.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	alpha := uint8(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid alpha in %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}
	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := cf.RGB255()
	return AsRGBA(color.NRGBA{r, g, b, alpha}), nil
}
