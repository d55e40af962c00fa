// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/polar/base/errors"
	"cogentcore.org/polar/base/reflectx"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/math32"
	"cogentcore.org/polar/paint"
	"github.com/jinzhu/copier"
)

// MaxSliceSpace is the largest slice space, in pixels.
const MaxSliceSpace = 20.0

// DataSet is an ordered list of [Entry] values drawn as one series,
// with the styling parameters for drawing it.
// Entries are changed only through methods, each of which increases
// the [DataSet.Version]. Styling fields may be set directly.
type DataSet struct {
	// Label is the name of the data set.
	Label string `copier:"-"`

	// Colors are the slice colors, cycled by entry index.
	// If empty, [colors.Spaced] colors are used.
	Colors []color.Color

	// Visible is whether the data set is drawn.
	Visible bool `default:"true"`

	// SliceSpace is the space between slices in pixels,
	// clamped to [0, MaxSliceSpace] when used.
	SliceSpace float64

	// AutomaticallyDisableSliceSpacing removes the slice space when it
	// would be large relative to the smallest slice.
	AutomaticallyDisableSliceSpacing bool

	// SelectionShift is the distance in pixels that a highlighted
	// slice extends beyond the outer radius.
	SelectionShift float64 `default:"18"`

	// HighlightColor is the color of highlighted slices.
	// If nil, the slice color is used.
	HighlightColor color.Color

	// DrawValues is whether the value text is drawn for each entry.
	DrawValues bool `default:"true"`

	// ValueFont is the font of the value text.
	ValueFont paint.Font

	// ValueColors are the value text colors, cycled by entry index.
	// If empty, [colors.Black] is used.
	ValueColors []color.Color

	// EntryLabelFont is the font of the entry labels.
	// If nil, the chart entry label font is used.
	EntryLabelFont *paint.Font

	// EntryLabelColor is the color of the entry labels.
	// If nil, the chart entry label color is used.
	EntryLabelColor color.Color

	// ValueFormatter formats the value text.
	// If nil, no value text is drawn.
	ValueFormatter ValueFormatter

	// XValuePosition is the position of the entry label.
	XValuePosition ValuePosition `default:"inside"`

	// YValuePosition is the position of the value text.
	YValuePosition ValuePosition `default:"inside"`

	// ValueLineColor is the color of the lines connecting outside
	// labels to their slices. If nil, the lines are not drawn.
	ValueLineColor color.Color

	// ValueLineWidth is the width of the value lines in pixels.
	ValueLineWidth float32 `default:"1"`

	// ValueLinePart1OffsetPercentage is where the value line starts,
	// as a fraction of the slice radius.
	ValueLinePart1OffsetPercentage float64 `default:"0.75"`

	// ValueLinePart1Length is the length of the first, radial part
	// of the value line, as a fraction of the label radius.
	ValueLinePart1Length float64 `default:"0.3"`

	// ValueLinePart2Length is the length of the second, horizontal
	// part of the value line, as a fraction of the label radius.
	ValueLinePart2Length float64 `default:"0.4"`

	// ValueLineVariableLength scales the second part of the value line
	// by the sine of the slice angle, so that it is longest
	// near the vertical.
	ValueLineVariableLength bool `default:"true"`

	entries []Entry
	version uint64
}

// NewDataSet returns a new data set with default styling
// and the given entries.
func NewDataSet(label string, entries ...Entry) *DataSet {
	ds := &DataSet{Label: label}
	ds.Defaults()
	ds.entries = slices.Clone(entries)
	return ds
}

// Defaults sets the default styling values.
func (ds *DataSet) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(ds))
	ds.ValueLineColor = colors.Black
}

// CopyStyleFrom copies all styling fields from the given data set,
// leaving the label and entries unchanged.
func (ds *DataSet) CopyStyleFrom(from *DataSet) {
	err := copier.CopyWithOption(ds, from, copier.Option{CaseSensitive: true})
	if err != nil {
		slog.Error("chart.DataSet.CopyStyleFrom", "err", err)
	}
	ds.Colors = slices.Clone(from.Colors)
	ds.ValueColors = slices.Clone(from.ValueColors)
	ds.EntryLabelFont = nil
	if from.EntryLabelFont != nil {
		f := *from.EntryLabelFont
		ds.EntryLabelFont = &f
	}
}

// Len returns the number of entries.
func (ds *DataSet) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.entries)
}

// Entries returns the entries. The returned slice must not be modified.
func (ds *DataSet) Entries() []Entry {
	if ds == nil {
		return nil
	}
	return ds.entries
}

// EntryForIndex returns the entry at the given index,
// and false if the index is out of range.
func (ds *DataSet) EntryForIndex(i int) (Entry, bool) {
	if ds == nil || i < 0 || i >= len(ds.entries) {
		return Entry{}, false
	}
	return ds.entries[i], true
}

// AddEntry appends the given entries.
func (ds *DataSet) AddEntry(e ...Entry) {
	ds.entries = append(ds.entries, e...)
	ds.version++
}

// RemoveEntry removes the entry at the given index,
// returning false if out of range.
func (ds *DataSet) RemoveEntry(i int) bool {
	if i < 0 || i >= len(ds.entries) {
		return false
	}
	ds.entries = slices.Delete(ds.entries, i, i+1)
	ds.version++
	return true
}

// SetEntries replaces all entries.
func (ds *DataSet) SetEntries(entries ...Entry) {
	ds.entries = slices.Clone(entries)
	ds.version++
}

// Clear removes all entries.
func (ds *DataSet) Clear() {
	ds.entries = nil
	ds.version++
}

// NotifyDataChanged records a change made outside of the entry methods.
func (ds *DataSet) NotifyDataChanged() {
	ds.version++
}

// Version returns a counter that increases with every change to the entries.
func (ds *DataSet) Version() uint64 {
	if ds == nil {
		return 0
	}
	return ds.version
}

// YMin returns the smallest finite entry value, including zero values,
// or 0 if there are no finite entries.
func (ds *DataSet) YMin() float64 {
	mn, ok := 0.0, false
	for _, e := range ds.Entries() {
		if !e.IsFinite() {
			continue
		}
		if !ok || e.Y < mn {
			mn, ok = e.Y, true
		}
	}
	return mn
}

// YMax returns the largest finite entry value,
// or 0 if there are no finite entries.
func (ds *DataSet) YMax() float64 {
	mx, ok := 0.0, false
	for _, e := range ds.Entries() {
		if !e.IsFinite() {
			continue
		}
		if !ok || e.Y > mx {
			mx, ok = e.Y, true
		}
	}
	return mx
}

// VisibleCount returns the number of entries with a non-zero value.
func (ds *DataSet) VisibleCount() int {
	n := 0
	for _, e := range ds.Entries() {
		if !e.IsZero() {
			n++
		}
	}
	return n
}

// Space returns the slice space, clamped to [0, MaxSliceSpace].
func (ds *DataSet) Space() float64 {
	return math32.Clamp(ds.SliceSpace, 0, MaxSliceSpace)
}

// Color returns the slice color for the entry at the given index.
func (ds *DataSet) Color(i int) color.Color {
	if len(ds.Colors) == 0 {
		return colors.Spaced(i)
	}
	return ds.Colors[mod(i, len(ds.Colors))]
}

// ValueTextColorAt returns the value text color for the entry at the given index.
func (ds *DataSet) ValueTextColorAt(i int) color.Color {
	if len(ds.ValueColors) == 0 {
		return colors.Black
	}
	return ds.ValueColors[mod(i, len(ds.ValueColors))]
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
