// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package payload

type TextRequest struct {
	Text string `json:"text"`
}

type ConvertRequest struct {
	Text      string `json:"text"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	FromQuote string `json:"fromQuote,omitempty"`
	ToQuote   string `json:"toQuote,omitempty"`
}

type JSONRequest struct {
	Text string `json:"text"`

	// Indent is the number of spaces per level, 1 to 8. Defaults to 2.
	Indent int `json:"indent,omitempty"`
}

type RegexRequest struct {
	Pattern   string `json:"pattern"`
	Text      string `json:"text"`
	Separator string `json:"separator,omitempty"`
	Quote     string `json:"quote,omitempty"`
}

type TextResponse struct {
	Result string `json:"result"`

	// Filename is set when the result is meant to be saved to a file
	Filename string `json:"filename,omitempty"`
}

type Tool struct {
	Name        string `json:"name"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type ToolsResponse struct {
	Tools []Tool `json:"tools"`
}
