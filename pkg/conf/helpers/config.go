// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package confhelpers isolates tests from config files on the host.
package confhelpers

import (
	"runtime"
	"testing"
)

// MockGlobalConf points the global config at an empty temporary directory
// and returns that directory.
func MockGlobalConf(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("AppData", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// MockSystemConf points the system config at an empty temporary directory
// and returns that directory.
func MockSystemConf(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DEVTOOLS_SYSTEM_CONFIG_DIR", dir)
	return dir
}
