// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package codec

import (
	"mime"
	"net/http"
	"path/filepath"
)

func mediaType(s string) string {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "application/octet-stream"
	}
	return mt
}

// DetectMIME guesses the media type of content, first from the extension
// of name then by sniffing content.
func DetectMIME(name string, content []byte) string {
	if ext := filepath.Ext(name); ext != "" {
		if s := mime.TypeByExtension(ext); s != "" {
			return mediaType(s)
		}
	}
	if len(content) == 0 {
		return "application/octet-stream"
	}
	return mediaType(http.DetectContentType(content))
}

func DataURI(name string, content []byte) string {
	return "data:" + DetectMIME(name, content) + ";base64," + Base64Encode(content)
}
