// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

var ErrInvalidIndent = fmt.Errorf("indent must be between 1 and 8")

// PrettifyJSON re-indents a JSON document with indent spaces per level.
// Object keys keep their original order.
func PrettifyJSON(s string, indent int) (string, error) {
	if indent < 1 || indent > 8 {
		return "", ErrInvalidIndent
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, []byte(strings.TrimSpace(s)), "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("invalid JSON: %v", err)
	}
	return buf.String(), nil
}
