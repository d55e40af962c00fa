// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelColors are the terminal colors used for each level name.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#8a8a8a",
	slog.LevelInfo:  "#00afd7",
	slog.LevelWarn:  "#d7af00",
	slog.LevelError: "#d70000",
}

// NewHandler returns a new text [slog.Handler] writing to w at [UserLevel].
// Level names are colored if w is a terminal that supports colors.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	color := out.ColorProfile() != termenv.Ascii
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if !color {
					return a
				}
				lev, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				c, ok := levelColors[lev]
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lev.String()).Foreground(out.Color(c)).Bold().String())
			}
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// SetDefaultLogger sets the default [slog] logger to one
// writing to [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
