// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/codec"
)

func newDataURICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datauri FILE",
		Short: "Turn a file into a data URI",
		Long:  "Turn a file into a base64 data URI. The media type comes from the file extension, or from the content when the extension is unknown.",
		Example: utils.CombineExamples([]utils.Example{
			{Line: "devtools datauri logo.png"},
		}),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := utils.ReadInput(cmd, args[0])
			if err != nil {
				return err
			}
			cmd.Println(codec.DataURI(filepath.Base(args[0]), b))
			return nil
		},
	}
	return cmd
}
