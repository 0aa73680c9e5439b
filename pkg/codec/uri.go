// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package codec

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// URIComponentEncode percent-encodes every UTF-8 byte of s except
// unreserved characters and !~*'().
func URIComponentEncode(s string) string {
	sb := &strings.Builder{}
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// URIComponentDecode reverses URIComponentEncode. "+" is kept as is.
func URIComponentDecode(s string) (string, error) {
	res, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("malformed URI sequence: %v", err)
	}
	if !utf8.ValidString(res) {
		return "", fmt.Errorf("malformed URI sequence: decoded text is not valid UTF-8")
	}
	return res, nil
}
