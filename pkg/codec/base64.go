// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
	"unicode"
)

func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64Decode decodes standard base64, ignoring whitespace anywhere in
// the input and accepting missing padding.
func Base64Decode(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimRight(s, "=")
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 input: %v", err)
	}
	return b, nil
}

// DecodedFilename returns the name decoded content is saved under.
func DecodedFilename(t time.Time) string {
	return fmt.Sprintf("decoded-base64-%s.bin", t.Format("20060102150405"))
}
