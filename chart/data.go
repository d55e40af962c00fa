// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart provides the data model shared by the radial charts:
// entries, data sets, the chart data that owns them, and the
// value formatting and highlight types used while drawing.
package chart

import (
	"math"
	"slices"
)

// Epsilon is the smallest magnitude treated as a non-zero value.
// It is the float64 machine epsilon.
const Epsilon = 0x1p-52

// Entry is one value of a [DataSet], with an optional label.
// Entries are values, so they cannot change once added to a data set.
type Entry struct {
	// Y is the value of the entry.
	Y float64

	// Label is the entry label. An empty label is not drawn.
	Label string
}

// IsZero returns whether the value of the entry is within [Epsilon] of 0.
func (e Entry) IsZero() bool {
	return e.Y <= Epsilon && e.Y >= -Epsilon
}

// IsFinite returns whether the value of the entry is neither NaN nor infinite.
func (e Entry) IsFinite() bool {
	return !math.IsNaN(e.Y) && !math.IsInf(e.Y, 0)
}

// Data is the ordered list of [DataSet]s drawn by a chart.
// Any change to the data, or to the entries of a data set it
// owns, increases its [Data.Version]. All methods are safe
// to call on a nil Data, which behaves as empty.
type Data struct {
	dataSets []*DataSet

	// version is the count of changes to the data set list itself,
	// plus the versions of any data sets that have been removed,
	// so that the total version never decreases.
	version uint64
}

// NewData returns new chart data with the given data sets.
func NewData(sets ...*DataSet) *Data {
	d := &Data{}
	d.dataSets = withoutNil(sets)
	return d
}

// DataSets returns the data sets. The returned slice must not be modified.
func (d *Data) DataSets() []*DataSet {
	if d == nil {
		return nil
	}
	return d.dataSets
}

// Len returns the number of data sets.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.dataSets)
}

// DataSet returns the data set at the given index, and false if out of range.
func (d *Data) DataSet(i int) (*DataSet, bool) {
	if d == nil || i < 0 || i >= len(d.dataSets) {
		return nil, false
	}
	return d.dataSets[i], true
}

// AddDataSet appends the given data set.
func (d *Data) AddDataSet(ds *DataSet) {
	if ds == nil {
		return
	}
	d.dataSets = append(d.dataSets, ds)
	d.version++
}

// RemoveDataSet removes the data set at the given index,
// returning false if out of range.
func (d *Data) RemoveDataSet(i int) bool {
	if d == nil || i < 0 || i >= len(d.dataSets) {
		return false
	}
	d.version += d.dataSets[i].Version() + 1
	d.dataSets = slices.Delete(d.dataSets, i, i+1)
	return true
}

// SetDataSets replaces all data sets.
func (d *Data) SetDataSets(sets ...*DataSet) {
	for _, ds := range d.dataSets {
		d.version += ds.Version()
	}
	d.version++
	d.dataSets = withoutNil(sets)
}

func withoutNil(sets []*DataSet) []*DataSet {
	return slices.DeleteFunc(slices.Clone(sets), func(ds *DataSet) bool { return ds == nil })
}

// EntryCount returns the total number of entries over all data sets.
func (d *Data) EntryCount() int {
	n := 0
	for _, ds := range d.DataSets() {
		n += ds.Len()
	}
	return n
}

// ValueSum returns the sum of the finite values of all entries
// over all data sets.
func (d *Data) ValueSum() float64 {
	sum := 0.0
	for _, ds := range d.DataSets() {
		for _, e := range ds.entries {
			if e.IsFinite() {
				sum += e.Y
			}
		}
	}
	return sum
}

// NotifyDataChanged records a change to the data made outside of
// the mutation methods, such as replacing entries in place.
func (d *Data) NotifyDataChanged() {
	d.version++
}

// Version returns a counter that increases with every change
// to the data or to the entries of any data set it holds.
// Derived state computed from the data remains valid while
// the version is unchanged.
func (d *Data) Version() uint64 {
	if d == nil {
		return 0
	}
	v := d.version
	for _, ds := range d.dataSets {
		v += ds.Version()
	}
	return v
}

// EntryForIndex returns the entry at the given index of the given
// data set, and false if either index is out of range.
func (d *Data) EntryForIndex(dataSet, entry int) (Entry, bool) {
	ds, ok := d.DataSet(dataSet)
	if !ok {
		return Entry{}, false
	}
	return ds.EntryForIndex(entry)
}
