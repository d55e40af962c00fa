// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/polar/math32"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ValueFormatter formats entry values for display.
// It must return a string for any finite value.
type ValueFormatter interface {
	// FormatValue returns the text for the given value of the given entry
	// of the data set with the given index, drawn in a viewport of the
	// given size.
	FormatValue(value float64, entry Entry, dataSetIndex int, viewport math32.Vector2) string
}

// FormatterFunc is a function that implements [ValueFormatter].
type FormatterFunc func(value float64, entry Entry, dataSetIndex int, viewport math32.Vector2) string

func (f FormatterFunc) FormatValue(value float64, entry Entry, dataSetIndex int, viewport math32.Vector2) string {
	return f(value, entry, dataSetIndex, viewport)
}

// DefaultFormatter formats values with a fixed number of fraction digits
// and locale digit grouping, followed by an optional suffix.
type DefaultFormatter struct {
	// Digits is the number of digits after the decimal point.
	Digits int

	// Suffix is appended to the number, such as " %".
	Suffix string

	// Language determines the decimal separator and digit grouping.
	Language language.Tag

	printer     *message.Printer
	printerLang language.Tag
}

// NewDefaultFormatter returns a new formatter for the given language,
// such as language.English.
func NewDefaultFormatter(lang language.Tag, digits int, suffix string) *DefaultFormatter {
	return &DefaultFormatter{Digits: digits, Suffix: suffix, Language: lang}
}

func (df *DefaultFormatter) FormatValue(value float64, entry Entry, dataSetIndex int, viewport math32.Vector2) string {
	if df.printer == nil || df.printerLang != df.Language {
		df.printer = message.NewPrinter(df.Language)
		df.printerLang = df.Language
	}
	d := max(df.Digits, 0)
	return df.printer.Sprintf("%v", number.Decimal(value, number.MinFractionDigits(d), number.MaxFractionDigits(d))) + df.Suffix
}
