// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	for i, c := range []struct {
		Text string
		D    Duration
		Out  string
	}{
		{"72h3m0.5s", Duration(72*time.Hour + 3*time.Minute + 500*time.Millisecond), "72h3m0.5s"},
		{"45", Duration(45 * time.Second), "45s"},
		{"1.5", Duration(1500 * time.Millisecond), "1.5s"},
	} {
		d := new(Duration)
		require.NoError(t, d.UnmarshalText([]byte(c.Text)), "case %d", i)
		assert.Equal(t, c.D, *d, "case %d", i)
		b, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, c.Out, string(b), "case %d", i)
	}
	assert.Error(t, new(Duration).UnmarshalText([]byte("soon")))
}
