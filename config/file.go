// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"image/color"

	"cogentcore.org/polar/base/errors"
	"cogentcore.org/polar/chart"
	"cogentcore.org/polar/colors"
	"cogentcore.org/polar/paint"
	"cogentcore.org/polar/polar"
	"golang.org/x/text/language"
)

// DefaultValueDigits is the number of fraction digits of values
// in charts loaded from files, unless set in the file.
const DefaultValueDigits = 1

// File is a chart description file. Unset fields keep their defaults.
type File struct {

	// Options has the chart options.
	Options Options `toml:"chart" yaml:"chart"`

	// Defaults are applied to every data set before its own fields.
	Defaults DataSet `toml:"defaults" yaml:"defaults"`

	// DataSets are the data sets of the chart.
	DataSets []DataSet `toml:"datasets" yaml:"datasets"`

	// Highlights are the initially highlighted entries.
	Highlights []Highlight `toml:"highlights" yaml:"highlights"`
}

// Options are the chart options of a [File].
type Options struct {
	MaxAngle                       *float64  `toml:"max_angle" yaml:"max_angle"`
	Rotation                       *float64  `toml:"rotation" yaml:"rotation"`
	UsePercentValues               *bool     `toml:"use_percent_values" yaml:"use_percent_values"`
	DrawCenterText                 *bool     `toml:"draw_center_text" yaml:"draw_center_text"`
	CenterText                     string    `toml:"center_text" yaml:"center_text"`
	CenterTextOffset               []float32 `toml:"center_text_offset" yaml:"center_text_offset"`
	CenterTextRadiusPercent        *float64  `toml:"center_text_radius_percent" yaml:"center_text_radius_percent"`
	CenterTextFont                 Font      `toml:"center_text_font" yaml:"center_text_font"`
	CenterTextColor                string    `toml:"center_text_color" yaml:"center_text_color"`
	DrawHole                       *bool     `toml:"draw_hole" yaml:"draw_hole"`
	HoleRadiusPercent              *float64  `toml:"hole_radius_percent" yaml:"hole_radius_percent"`
	DrawEntryLabels                *bool     `toml:"draw_entry_labels" yaml:"draw_entry_labels"`
	EntryLabelColor                string    `toml:"entry_label_color" yaml:"entry_label_color"`
	EntryLabelFont                 Font      `toml:"entry_label_font" yaml:"entry_label_font"`
	DrawTransparentCircle          *bool     `toml:"draw_transparent_circle" yaml:"draw_transparent_circle"`
	TransparentCircleColor         string    `toml:"transparent_circle_color" yaml:"transparent_circle_color"`
	TransparentCircleRadiusPercent *float64  `toml:"transparent_circle_radius_percent" yaml:"transparent_circle_radius_percent"`
}

// Font is a font of a [File]. A zero size keeps the default size.
type Font struct {
	Family string  `toml:"family" yaml:"family"`
	Size   float32 `toml:"size" yaml:"size"`
}

// DataSet is a data set of a [File].
type DataSet struct {
	Label                   string               `toml:"label" yaml:"label"`
	Entries                 []Entry              `toml:"entries" yaml:"entries"`
	Hidden                  *bool                `toml:"hidden" yaml:"hidden"`
	Colors                  []string             `toml:"colors" yaml:"colors"`
	SliceSpace              *float64             `toml:"slice_space" yaml:"slice_space"`
	AutoDisableSliceSpacing *bool                `toml:"auto_disable_slice_spacing" yaml:"auto_disable_slice_spacing"`
	SelectionShift          *float64             `toml:"selection_shift" yaml:"selection_shift"`
	HighlightColor          string               `toml:"highlight_color" yaml:"highlight_color"`
	DrawValues              *bool                `toml:"draw_values" yaml:"draw_values"`
	ValueDigits             *int                 `toml:"value_digits" yaml:"value_digits"`
	ValueSuffix             *string              `toml:"value_suffix" yaml:"value_suffix"`
	ValueLanguage           string               `toml:"value_language" yaml:"value_language"`
	ValueFont               Font                 `toml:"value_font" yaml:"value_font"`
	ValueColors             []string             `toml:"value_colors" yaml:"value_colors"`
	EntryLabelFont          Font                 `toml:"entry_label_font" yaml:"entry_label_font"`
	EntryLabelColor         string               `toml:"entry_label_color" yaml:"entry_label_color"`
	XValuePosition          *chart.ValuePosition `toml:"x_value_position" yaml:"x_value_position"`
	YValuePosition          *chart.ValuePosition `toml:"y_value_position" yaml:"y_value_position"`
	ValueLineColor          *string              `toml:"value_line_color" yaml:"value_line_color"`
	ValueLineWidth          *float32             `toml:"value_line_width" yaml:"value_line_width"`
	ValueLine               ValueLine            `toml:"value_line" yaml:"value_line"`
}

// ValueLine has the geometry of the value lines of a [DataSet].
type ValueLine struct {
	Part1OffsetPercentage *float64 `toml:"part1_offset_percentage" yaml:"part1_offset_percentage"`
	Part1Length           *float64 `toml:"part1_length" yaml:"part1_length"`
	Part2Length           *float64 `toml:"part2_length" yaml:"part2_length"`
	VariableLength        *bool    `toml:"variable_length" yaml:"variable_length"`
}

// Entry is an entry of a [DataSet].
type Entry struct {
	Y     float64 `toml:"y" yaml:"y"`
	Label string  `toml:"label" yaml:"label"`
}

// Highlight is a highlighted entry of a [File].
type Highlight struct {
	DataSet int `toml:"dataset" yaml:"dataset"`
	Entry   int `toml:"entry" yaml:"entry"`
}

// Chart returns the chart described by the file.
// Values are formatted by a [chart.DefaultFormatter].
// It returns [ErrNoData] if there are no entries.
func (fl *File) Chart() (*polar.Chart, error) {
	base := chart.NewDataSet("")
	base.ValueFormatter = chart.NewDefaultFormatter(language.English, DefaultValueDigits, "")
	var errs []error
	errs = append(errs, fl.Defaults.apply(base)...)

	sets := make([]*chart.DataSet, len(fl.DataSets))
	for i := range fl.DataSets {
		fd := &fl.DataSets[i]
		ds := chart.NewDataSet(fd.Label, fd.entries()...)
		ds.CopyStyleFrom(base)
		for _, err := range fd.apply(ds) {
			errs = append(errs, fmt.Errorf("datasets[%d]: %w", i, err))
		}
		sets[i] = ds
	}

	ch := polar.NewChart(chart.NewData(sets...))
	errs = append(errs, fl.Options.apply(&ch.Options)...)
	for _, h := range fl.Highlights {
		ch.Highlights = append(ch.Highlights, chart.Highlight{DataSet: h.DataSet, Entry: h.Entry})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if ch.Data.EntryCount() == 0 {
		return nil, ErrNoData
	}
	return ch, nil
}

func (fd *DataSet) entries() []chart.Entry {
	es := make([]chart.Entry, len(fd.Entries))
	for i, e := range fd.Entries {
		es[i] = chart.Entry{Y: e.Y, Label: e.Label}
	}
	return es
}

// apply sets the fields of the data set that are set in the file.
func (fd *DataSet) apply(ds *chart.DataSet) []error {
	var errs []error
	setColor := func(field, s string, c *color.Color) {
		if s == "" {
			return
		}
		clr, err := colors.FromHex(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
			return
		}
		*c = clr
	}
	setColors := func(field string, ss []string, cs *[]color.Color) {
		if len(ss) == 0 {
			return
		}
		*cs = make([]color.Color, len(ss))
		for i, s := range ss {
			setColor(fmt.Sprintf("%s[%d]", field, i), s, &(*cs)[i])
		}
	}

	set(&ds.Visible, negate(fd.Hidden))
	setColors("colors", fd.Colors, &ds.Colors)
	set(&ds.SliceSpace, fd.SliceSpace)
	set(&ds.AutomaticallyDisableSliceSpacing, fd.AutoDisableSliceSpacing)
	set(&ds.SelectionShift, fd.SelectionShift)
	setColor("highlight_color", fd.HighlightColor, &ds.HighlightColor)
	set(&ds.DrawValues, fd.DrawValues)
	fd.ValueFont.apply(&ds.ValueFont)
	setColors("value_colors", fd.ValueColors, &ds.ValueColors)
	if !fd.EntryLabelFont.isZero() {
		f := ds.ValueFont
		if ds.EntryLabelFont != nil {
			f = *ds.EntryLabelFont
		}
		fd.EntryLabelFont.apply(&f)
		ds.EntryLabelFont = &f
	}
	setColor("entry_label_color", fd.EntryLabelColor, &ds.EntryLabelColor)
	set(&ds.XValuePosition, fd.XValuePosition)
	set(&ds.YValuePosition, fd.YValuePosition)
	if fd.ValueLineColor != nil {
		ds.ValueLineColor = nil
		setColor("value_line_color", *fd.ValueLineColor, &ds.ValueLineColor)
	}
	set(&ds.ValueLineWidth, fd.ValueLineWidth)
	set(&ds.ValueLinePart1OffsetPercentage, fd.ValueLine.Part1OffsetPercentage)
	set(&ds.ValueLinePart1Length, fd.ValueLine.Part1Length)
	set(&ds.ValueLinePart2Length, fd.ValueLine.Part2Length)
	set(&ds.ValueLineVariableLength, fd.ValueLine.VariableLength)

	if fd.ValueDigits != nil || fd.ValueSuffix != nil || fd.ValueLanguage != "" {
		df := chart.NewDefaultFormatter(language.English, DefaultValueDigits, "")
		if cur, ok := ds.ValueFormatter.(*chart.DefaultFormatter); ok {
			df = chart.NewDefaultFormatter(cur.Language, cur.Digits, cur.Suffix)
		}
		set(&df.Digits, fd.ValueDigits)
		set(&df.Suffix, fd.ValueSuffix)
		if fd.ValueLanguage != "" {
			tag, err := language.Parse(fd.ValueLanguage)
			if err != nil {
				errs = append(errs, fmt.Errorf("value_language: %w", err))
			} else {
				df.Language = tag
			}
		}
		ds.ValueFormatter = df
	}
	return errs
}

// apply sets the chart options that are set in the file.
func (fo *Options) apply(o *polar.Options) []error {
	var errs []error
	setColor := func(field, s string, c *color.Color) {
		if s == "" {
			return
		}
		clr, err := colors.FromHex(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("chart.%s: %w", field, err))
			return
		}
		*c = clr
	}

	set(&o.MaxAngle, fo.MaxAngle)
	set(&o.Rotation, fo.Rotation)
	set(&o.UsePercentValues, fo.UsePercentValues)
	set(&o.DrawCenterText, fo.DrawCenterText)
	o.CenterText = fo.CenterText
	switch len(fo.CenterTextOffset) {
	case 0:
	case 2:
		o.CenterTextOffset.Set(fo.CenterTextOffset[0], fo.CenterTextOffset[1])
	default:
		errs = append(errs, fmt.Errorf("chart.center_text_offset: expected 2 values, got %d", len(fo.CenterTextOffset)))
	}
	set(&o.CenterTextRadiusPercent, fo.CenterTextRadiusPercent)
	fo.CenterTextFont.apply(&o.CenterTextStyle.Font)
	setColor("center_text_color", fo.CenterTextColor, &o.CenterTextStyle.Color)
	set(&o.DrawHole, fo.DrawHole)
	set(&o.HoleRadiusPercent, fo.HoleRadiusPercent)
	set(&o.DrawEntryLabels, fo.DrawEntryLabels)
	setColor("entry_label_color", fo.EntryLabelColor, &o.EntryLabelColor)
	fo.EntryLabelFont.apply(&o.EntryLabelFont)
	set(&o.DrawTransparentCircle, fo.DrawTransparentCircle)
	setColor("transparent_circle_color", fo.TransparentCircleColor, &o.TransparentCircleColor)
	set(&o.TransparentCircleRadiusPercent, fo.TransparentCircleRadiusPercent)
	return errs
}

func (f Font) isZero() bool {
	return f.Family == "" && f.Size == 0
}

// apply sets the font fields that are set.
func (f Font) apply(pf *paint.Font) {
	if f.Family != "" {
		pf.Family = f.Family
	}
	if f.Size > 0 {
		pf.Size = f.Size
	}
}

// set sets *dst to *v if v is not nil.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func negate(b *bool) *bool {
	if b == nil {
		return nil
	}
	n := !*b
	return &n
}
