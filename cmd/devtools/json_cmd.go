// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/codec"
)

func newJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json [FILE]",
		Short: "Prettify a JSON document",
		Long:  "Prettify a JSON document, keeping the order of object keys. Reads standard input when FILE is not given.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "indent with 4 spaces",
				Line:    "devtools json data.json --indent 4",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indent, err := cmd.Flags().GetInt("indent")
			if err != nil {
				return err
			}
			b, err := utils.ReadOptionalInput(cmd, args, 0)
			if err != nil {
				return err
			}
			s, err := codec.PrettifyJSON(string(b), indent)
			if err != nil {
				return err
			}
			cmd.Println(s)
			return nil
		},
	}
	cmd.Flags().IntP("indent", "i", 2, "number of spaces per indentation level (1 to 8)")
	return cmd
}
