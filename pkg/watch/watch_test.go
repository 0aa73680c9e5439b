// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	prev := filepath.Join(dir, "prev.csv")
	curr := filepath.Join(dir, "curr.csv")
	other := filepath.Join(dir, "other.csv")
	writeFile(t, prev, "id\n1\n")
	writeFile(t, curr, "id\n2\n")
	writeFile(t, other, "id\n3\n")

	w, err := New(logr.Discard(), prev, curr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan string, 10)
	done := make(chan error)
	go func() {
		done <- w.Run(ctx, func(path string) {
			changes <- path
		})
	}()

	writeFile(t, other, "id\n4\n")
	writeFile(t, prev, "id\n1\n5\n")
	select {
	case p := <-changes:
		assert.Equal(t, prev, p)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for change")
	}

	cancel()
	require.NoError(t, <-done)
	close(changes)
	for p := range changes {
		assert.Equal(t, prev, p)
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := New(logr.Discard(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
