// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package codec

import (
	"fmt"
	"regexp"
)

// PullByRegex returns the capture groups of every match of pattern in
// text, one record per match. A group that did not participate in a match
// yields an empty field.
func PullByRegex(pattern, text string) ([][]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression: %v", err)
	}
	matches := re.FindAllStringSubmatch(text, -1)
	res := make([][]string, 0, len(matches))
	for _, m := range matches {
		res = append(res, m[1:])
	}
	return res, nil
}
