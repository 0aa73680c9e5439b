// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrgl/devtools/cmd/devtools/utils"
)

func RootCmd() *cobra.Command {
	var stopProfiling func() error
	rootCmd := &cobra.Command{
		Use:   "devtools",
		Short: "Small text utilities with a CSV diff at the core",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			stopProfiling, err = utils.StartProfiling(cmd.Flags())
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if stopProfiling == nil {
				return nil
			}
			return stopProfiling()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "read config from this file on top of system, global and local config")
	viper.SetEnvPrefix("devtools")
	viper.BindEnv("config")
	viper.BindPFlag("config", flags.Lookup("config"))
	utils.AddLoggerFlags(flags)
	utils.AddProfileFlags(flags)
	rootCmd.AddCommand(
		newDiffCmd(),
		newConvertCmd(),
		newJSONCmd(),
		newRegexCmd(),
		newBase64Cmd(),
		newURLEncodeCmd(),
		newDataURICmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
