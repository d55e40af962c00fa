// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Highlight identifies an emphasized entry by its data set index
// and its entry index within that data set.
type Highlight struct {
	DataSet int
	Entry   int
}

// Highlights is a set of highlighted entries.
type Highlights []Highlight

// Has returns whether the given entry is highlighted.
func (hs Highlights) Has(dataSet, entry int) bool {
	for _, h := range hs {
		if h.DataSet == dataSet && h.Entry == entry {
			return true
		}
	}
	return false
}

// Valid returns the highlights that refer to entries in the given data
// in their original order, dropping any that are out of range and
// any repeats of an earlier highlight.
func (hs Highlights) Valid(d *Data) Highlights {
	var v Highlights
	seen := map[Highlight]bool{}
	for _, h := range hs {
		if seen[h] {
			continue
		}
		if _, ok := d.EntryForIndex(h.DataSet, h.Entry); ok {
			seen[h] = true
			v = append(v, h)
		}
	}
	return v
}
