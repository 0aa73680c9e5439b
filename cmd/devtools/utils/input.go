// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ReadInput reads the named file, or the command input when name is empty
// or "-".
func ReadInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("can't find file %s", name)
		}
		return nil, err
	}
	return b, nil
}

// ReadOptionalInput reads args[i] when present, otherwise the command input.
func ReadOptionalInput(cmd *cobra.Command, args []string, i int) ([]byte, error) {
	if i < len(args) {
		return ReadInput(cmd, args[i])
	}
	return ReadInput(cmd, "")
}
