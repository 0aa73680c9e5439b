// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package codec implements the small text tools: base64 and URI component
// encoding, JSON prettifying, regex extraction and data URIs.
package codec
