// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Render a chart file again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return watchFile(ctx, args[0], ro, nil)
		},
	}
	ro.addFlags(cmd)
	return cmd
}

// watchFile renders the given file, and then renders it again each
// time it is written, until the context is done. Render errors are
// logged and do not stop watching. If rendered is non-nil, it is
// called with the result of each render.
func watchFile(ctx context.Context, input string, ro *renderOptions, rendered func(error)) error {
	render := func() {
		err := renderFile(input, ro)
		if err != nil {
			slog.Error("polarchart watch", "file", input, "err", err)
		}
		if rendered != nil {
			rendered(err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	input, err = homedir.Expand(input)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	// editors often replace files, so the directory is watched
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("polarchart watch: changed", "file", input, "op", event.Op)
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("polarchart watch", "err", err)
		}
	}
}
