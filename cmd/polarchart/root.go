// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/polar/logx"
	"github.com/spf13/cobra"
)

// verbosity has the logging flags shared by all commands.
type verbosity struct {
	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}

func newRootCmd() *cobra.Command {
	vb := &verbosity{}
	cmd := &cobra.Command{
		Use:          "polarchart",
		Short:        "Render polar area charts from chart files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vb.VeryVerbose, vb.Verbose, vb.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&vb.VeryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&vb.Verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVarP(&vb.Quiet, "quiet", "q", false, "only print errors")

	cmd.AddCommand(newRenderCmd(), newWatchCmd())
	return cmd
}
