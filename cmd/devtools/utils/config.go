// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrgl/devtools/pkg/conf"
	conffs "github.com/wrgl/devtools/pkg/conf/fs"
	"github.com/wrgl/devtools/pkg/csvutil"
)

// OpenConfig merges system, global and local config files plus the file
// given with --config (or DEVTOOLS_CONFIG).
func OpenConfig(cmd *cobra.Command) (*conf.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return conffs.Load(wd, viper.GetString("config"))
}

// CSVOptions resolves separator and quote from flags, falling back to the
// diff section of config.
func CSVOptions(cmd *cobra.Command, c *conf.Config) (sep, quote rune, err error) {
	sepName, err := cmd.Flags().GetString("separator")
	if err != nil {
		return
	}
	if sepName == "" {
		sepName = c.DiffSeparator()
	}
	quoteName := ""
	if cmd.Flags().Lookup("quote") != nil {
		quoteName, err = cmd.Flags().GetString("quote")
		if err != nil {
			return
		}
	}
	if quoteName == "" {
		quoteName = c.DiffQuote()
	}
	if sep, err = csvutil.ParseSeparator(sepName); err != nil {
		return
	}
	quote, err = csvutil.ParseQuote(quoteName)
	return
}
