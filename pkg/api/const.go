// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package api

const (
	// CTJSON is content type for Json payload
	CTJSON = "application/json"
	// CTOctetStream is content type for raw file payload
	CTOctetStream = "application/octet-stream"

	// HeaderRequestID carries the id assigned to each request
	HeaderRequestID = "X-Request-Id"

	PathTools           = "/"
	PathDiff            = "/diff/"
	PathConvert         = "/convert/"
	PathJSON            = "/json/"
	PathRegex           = "/regex/"
	PathBase64Encode    = "/base64/encode/"
	PathBase64Decode    = "/base64/decode/"
	PathURLEncode       = "/urlencode/encode/"
	PathURLDecode       = "/urlencode/decode/"
	PathDataURI         = "/datauri/"
	DefaultJSONIndent   = 2
	MaxRequestBodyBytes = 32 << 20
)
