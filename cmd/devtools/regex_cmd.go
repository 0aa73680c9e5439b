// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/codec"
	"github.com/wrgl/devtools/pkg/csvutil"
)

func newRegexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regex PATTERN [FILE]",
		Short: "Pull regex capture groups into CSV",
		Long:  "Find every match of PATTERN and write its capture groups as one CSV record. Reads standard input when FILE is not given.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "extract key and value pairs",
				Line:    `devtools regex '(\w+)=(\w+)' settings.txt`,
			},
			{
				Comment: "output TSV instead",
				Line:    `devtools regex '(\d+)-(\d+)' ranges.txt --separator tab`,
			},
		}),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sepName, err := cmd.Flags().GetString("separator")
			if err != nil {
				return err
			}
			sep, err := csvutil.ParseSeparator(sepName)
			if err != nil {
				return err
			}
			quoteName, err := cmd.Flags().GetString("quote")
			if err != nil {
				return err
			}
			quote, err := csvutil.ParseQuote(quoteName)
			if err != nil {
				return err
			}
			b, err := utils.ReadOptionalInput(cmd, args, 1)
			if err != nil {
				return err
			}
			rows, err := codec.PullByRegex(args[0], string(b))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), csvutil.Stringify(rows, sep, quote))
			return err
		},
	}
	cmd.Flags().String("separator", "comma", `separator of the output: "comma" or "tab"`)
	cmd.Flags().String("quote", "double", `quote character of the output: "double" or "single"`)
	return cmd
}
