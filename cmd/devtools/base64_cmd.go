// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/codec"
)

func newBase64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
	}
	cmd.AddCommand(newBase64EncodeCmd())
	cmd.AddCommand(newBase64DecodeCmd())
	return cmd
}

func newBase64EncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [FILE]",
		Short: "Encode bytes to base64",
		Long:  "Encode the bytes of FILE, or of standard input when FILE is not given, to padded base64.",
		Example: utils.CombineExamples([]utils.Example{
			{Line: "devtools base64 encode image.png"},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := utils.ReadOptionalInput(cmd, args, 0)
			if err != nil {
				return err
			}
			cmd.Println(codec.Base64Encode(b))
			return nil
		},
	}
	return cmd
}

func newBase64DecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode base64 text",
		Long:  "Decode base64 text. Surrounding whitespace and missing padding are tolerated. With --to-file the bytes are saved to decoded-base64-TIMESTAMP.bin instead of being written to standard output.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "decode to standard output",
				Line:    "echo aGVsbG8= | devtools base64 decode",
			},
			{
				Comment: "decode into a new file inside the out directory",
				Line:    "devtools base64 decode encoded.txt --to-file --dir out",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toFile, err := cmd.Flags().GetBool("to-file")
			if err != nil {
				return err
			}
			dir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return err
			}
			b, err := utils.ReadOptionalInput(cmd, args, 0)
			if err != nil {
				return err
			}
			decoded, err := codec.Base64Decode(string(b))
			if err != nil {
				return err
			}
			if !toFile {
				_, err = cmd.OutOrStdout().Write(decoded)
				return err
			}
			name := filepath.Join(dir, codec.DecodedFilename(time.Now()))
			if err := os.WriteFile(name, decoded, 0644); err != nil {
				return err
			}
			cmd.Printf("Saved %d bytes to %s\n", len(decoded), name)
			return nil
		},
	}
	cmd.Flags().Bool("to-file", false, "save decoded bytes to a timestamped file")
	cmd.Flags().String("dir", ".", "directory of the file created with --to-file")
	return cmd
}
