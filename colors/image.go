// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
)

// Uniform returns an [image.Uniform] of the given color for use as a
// draw source. A nil color gives a [Transparent] source, so that
// unset style colors draw nothing.
func Uniform(c color.Color) *image.Uniform {
	return image.NewUniform(AsRGBA(c))
}
