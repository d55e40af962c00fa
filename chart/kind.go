// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"cogentcore.org/polar/base/errors"
)

// ErrUnsupported is the error wrapped by every [UnsupportedError].
var ErrUnsupported = errors.New("chart: unsupported capability")

// Kind is the kind of radial chart.
type Kind int32

const (
	// Pie charts have slice angles weighted by value.
	Pie Kind = iota

	// Polar area charts have uniform slice angles and
	// slice radii scaled by value.
	Polar
)

func (k Kind) String() string {
	switch k {
	case Pie:
		return "Pie"
	case Polar:
		return "Polar"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Capability is a feature that a [Kind] of chart may provide.
type Capability int32

const (
	// XAxis is a horizontal value axis.
	XAxis Capability = iota

	// YAxis is a vertical value axis.
	YAxis

	// WeightedAngles is slice angles proportional to value.
	WeightedAngles

	// UniformAngles is equal slice angles for every entry.
	UniformAngles

	// RadialValues is slice radii proportional to value.
	RadialValues

	// SliceSpacing is space between slices.
	SliceSpacing

	// CenterText is text in the center of the chart.
	CenterText

	// Highlighting is redrawing selected entries with emphasis.
	Highlighting
)

var capabilityNames = [...]string{"XAxis", "YAxis", "WeightedAngles", "UniformAngles", "RadialValues", "SliceSpacing", "CenterText", "Highlighting"}

func (c Capability) String() string {
	if c >= 0 && int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return fmt.Sprintf("Capability(%d)", c)
}

// Capabilities is a set of [Capability] values.
type Capabilities uint32

// NewCapabilities returns the set of the given capabilities.
func NewCapabilities(cs ...Capability) Capabilities {
	var s Capabilities
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

// Has returns whether the set contains the given capability.
func (s Capabilities) Has(c Capability) bool {
	return c >= 0 && c < 32 && s&(1<<c) != 0
}

var kindCapabilities = map[Kind]Capabilities{
	Pie:   NewCapabilities(WeightedAngles, SliceSpacing, CenterText, Highlighting),
	Polar: NewCapabilities(UniformAngles, RadialValues, SliceSpacing, CenterText, Highlighting),
}

// Capabilities returns the capabilities of the kind of chart.
func (k Kind) Capabilities() Capabilities {
	return kindCapabilities[k]
}

// Supports returns whether the kind of chart has the given capability.
func (k Kind) Supports(c Capability) bool {
	return k.Capabilities().Has(c)
}

// Require returns an [*UnsupportedError] if the kind of chart
// does not have the given capability, and nil otherwise.
func (k Kind) Require(c Capability) error {
	if k.Supports(c) {
		return nil
	}
	return &UnsupportedError{Kind: k, Capability: c}
}

// UnsupportedError is returned when a capability that a kind of chart
// does not have is requested. It wraps [ErrUnsupported].
type UnsupportedError struct {
	Kind       Kind
	Capability Capability
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("chart: %v chart has no %v", e.Kind, e.Capability)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
