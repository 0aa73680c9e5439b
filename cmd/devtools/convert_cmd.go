// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/csvutil"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [FILE]",
		Short: "Change the separator and quote character of a CSV text",
		Long:  "Change the separator and quote character of a CSV text. Reads standard input when FILE is not given.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "turn a CSV file into TSV",
				Line:    "devtools convert data.csv --to tab > data.tsv",
			},
			{
				Comment: "switch to single quotes",
				Line:    "cat data.csv | devtools convert --to-quote single",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := utils.ReadOptionalInput(cmd, args, 0)
			if err != nil {
				return err
			}
			var runes [4]rune
			for i, name := range []string{"from", "from-quote", "to", "to-quote"} {
				s, err := cmd.Flags().GetString(name)
				if err != nil {
					return err
				}
				if i%2 == 0 {
					runes[i], err = csvutil.ParseSeparator(s)
				} else {
					runes[i], err = csvutil.ParseQuote(s)
				}
				if err != nil {
					return err
				}
			}
			s, err := csvutil.Convert(string(b), runes[0], runes[1], runes[2], runes[3])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().String("from", "comma", `separator of the input: "comma" or "tab"`)
	cmd.Flags().String("from-quote", "double", `quote character of the input: "double" or "single"`)
	cmd.Flags().String("to", "comma", `separator of the output: "comma" or "tab"`)
	cmd.Flags().String("to-quote", "double", `quote character of the output: "double" or "single"`)
	return cmd
}
