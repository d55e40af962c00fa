// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// parseXLSX reads a spreadsheet as a chart file with one data set per
// sheet, named by the sheet. Each row with a number in its second
// column is an entry, labeled by its first column. Other rows, such
// as headers, are skipped. Sheets without entries are skipped.
func parseXLSX(b []byte) (*File, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fl := &File{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		ds := DataSet{Label: sheet}
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			y, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
			if err != nil {
				continue
			}
			ds.Entries = append(ds.Entries, Entry{Y: y, Label: strings.TrimSpace(row[0])})
		}
		if len(ds.Entries) > 0 {
			fl.DataSets = append(fl.DataSets, ds)
		}
	}
	return fl, nil
}
