// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package payload

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/pckhoi/meow"
)

// Hex is a 16-byte checksum serialized as a hex string.
type Hex [16]byte

func (x *Hex) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%x"`, *x)), nil
}

func (x *Hex) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid hex string %s", string(b))
	}
	b = b[1 : len(b)-1]
	if hex.DecodedLen(len(b)) != len(x) {
		return fmt.Errorf("invalid hex length %d", len(b))
	}
	_, err := hex.Decode((*x)[:], b)
	return err
}

func (x *Hex) String() string {
	return hex.EncodeToString((*x)[:])
}

// Checksum returns the meow checksum of all parts, each prefixed with its
// length so that moving bytes between parts changes the sum.
func Checksum(parts ...string) *Hex {
	buf := &bytes.Buffer{}
	for _, p := range parts {
		fmt.Fprintf(buf, "%d:", len(p))
		buf.WriteString(p)
	}
	x := Hex(meow.Checksum(0, buf.Bytes()))
	return &x
}
