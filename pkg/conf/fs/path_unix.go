// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

//go:build !windows

package conffs

import (
	"os"
	"path/filepath"
)

// GlobalPath follows the XDG base directory layout.
func GlobalPath() (string, error) {
	dir, ok := os.LookupEnv("XDG_CONFIG_HOME")
	if !ok || dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "devtools", "config.yaml"), nil
}
