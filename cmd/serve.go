// Copyright 2016 The Gothermo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cpmech/gothermo/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve property and process calculations over websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		engine, err := newEngine()
		if err != nil {
			return err
		}
		return server.New(addr, engine).Serve()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":9000", "listen address")
	rootCmd.AddCommand(serveCmd)
}
