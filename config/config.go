// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads polar area charts from chart description
// files in TOML or YAML, or from the data in XLSX spreadsheets.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/polar/base/errors"
	"cogentcore.org/polar/polar"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoData is returned for chart files without any entries.
var ErrNoData = errors.New("config: chart has no entries")

// Formats are the supported chart file formats.
type Formats int32

const (
	None Formats = iota
	TOML
	YAML

	// XLSX is a spreadsheet with one data set per sheet.
	XLSX
)

func (f Formats) String() string {
	switch f {
	case None:
		return "None"
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	case XLSX:
		return "XLSX"
	}
	return fmt.Sprintf("Formats(%d)", int(f))
}

// ExtToFormat returns the format for a filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "xlsx":
		return XLSX, nil
	case "":
		return None, errors.New("config.ExtToFormat: ext is empty")
	}
	return None, fmt.Errorf("config.ExtToFormat: extension %q not recognized", ext)
}

// Open loads the chart in the given file, with the format
// given by its extension.
func Open(filename string) (*polar.Chart, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ch, err := Parse(b, f)
	if err != nil {
		return nil, fmt.Errorf("config.Open %q: %w", filename, err)
	}
	return ch, nil
}

// Read loads a chart in the given format from the reader.
func Read(r io.Reader, f Formats) (*polar.Chart, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(b, f)
}

// Parse loads a chart in the given format from the bytes.
// Unknown fields are errors. Spreadsheets give charts with
// default options.
func Parse(b []byte, f Formats) (*polar.Chart, error) {
	fl := &File{}
	switch f {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(fl); err != nil {
			return nil, fmt.Errorf("config: decoding TOML: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(fl); err != nil && err != io.EOF {
			return nil, fmt.Errorf("config: decoding YAML: %w", err)
		}
	case XLSX:
		xf, err := parseXLSX(b)
		if err != nil {
			return nil, fmt.Errorf("config: reading XLSX: %w", err)
		}
		fl = xf
	default:
		return nil, fmt.Errorf("config.Parse: unsupported format %v", f)
	}
	return fl.Chart()
}
