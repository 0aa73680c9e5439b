// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/codec"
)

func newURLEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlencode",
		Short: "Percent-encode or decode a URI component",
	}
	cmd.PersistentFlags().Bool("keep-newline", false, "keep the trailing line break of the input")
	cmd.AddCommand(&cobra.Command{
		Use:   "encode [FILE]",
		Short: "Percent-encode a URI component",
		Example: utils.CombineExamples([]utils.Example{
			{Line: "echo 'a b&c' | devtools urlencode encode"},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readURLInput(cmd, args)
			if err != nil {
				return err
			}
			cmd.Println(codec.URIComponentEncode(s))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode a percent-encoded URI component",
		Example: utils.CombineExamples([]utils.Example{
			{Line: "echo 'a%20b%26c' | devtools urlencode decode"},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readURLInput(cmd, args)
			if err != nil {
				return err
			}
			s, err = codec.URIComponentDecode(s)
			if err != nil {
				return err
			}
			cmd.Println(s)
			return nil
		},
	})
	return cmd
}

func readURLInput(cmd *cobra.Command, args []string) (string, error) {
	b, err := utils.ReadOptionalInput(cmd, args, 0)
	if err != nil {
		return "", err
	}
	keep, err := cmd.Flags().GetBool("keep-newline")
	if err != nil {
		return "", err
	}
	s := string(b)
	if !keep {
		s = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
	}
	return s, nil
}
