// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package paint is the drawing abstraction used by the chart renderers.

Chart code draws through the [Canvas] interface. The [Painter]
implementation records each drawing operation as a [Render] item list,
which is then replayed by a backend [Renderer] such as
renderers/rasterx (images) or renderers/svgrender (SVG source).
*/
package paint
