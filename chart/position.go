// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strings"
)

// ValuePosition is where value text and entry labels are drawn
// relative to their slice.
type ValuePosition int32

const (
	// InsideSlice draws the text inside the slice, centered on its bisector.
	InsideSlice ValuePosition = iota

	// OutsideSlice draws the text outside the slice, connected to it
	// by a value line.
	OutsideSlice
)

func (vp ValuePosition) String() string {
	switch vp {
	case InsideSlice:
		return "inside"
	case OutsideSlice:
		return "outside"
	}
	return fmt.Sprintf("ValuePosition(%d)", vp)
}

// ParseValuePosition returns the position with the given name, which is
// "inside" or "outside", optionally followed by "Slice", in any case.
func ParseValuePosition(s string) (ValuePosition, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "slice") {
	case "inside":
		return InsideSlice, nil
	case "outside":
		return OutsideSlice, nil
	}
	return InsideSlice, fmt.Errorf("chart.ParseValuePosition: invalid value position %q", s)
}

// SetString sets the position from its name.
func (vp *ValuePosition) SetString(s string) error {
	v, err := ParseValuePosition(s)
	if err != nil {
		return err
	}
	*vp = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (vp ValuePosition) MarshalText() ([]byte, error) {
	return []byte(vp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (vp *ValuePosition) UnmarshalText(text []byte) error {
	return vp.SetString(string(text))
}
