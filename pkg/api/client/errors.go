// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wrgl/devtools/pkg/api"
	"github.com/wrgl/devtools/pkg/api/payload"
)

type HTTPError struct {
	Code    int
	Message string

	// Body is the decoded error payload, if the server sent one
	Body *payload.Error
}

func NewHTTPError(resp *http.Response) *HTTPError {
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	err := &HTTPError{
		Code:    resp.StatusCode,
		Message: strings.TrimSpace(string(b)),
	}
	if strings.Contains(resp.Header.Get("Content-Type"), api.CTJSON) {
		obj := &payload.Error{}
		if json.Unmarshal(b, obj) == nil {
			err.Body = obj
			err.Message = obj.Message
		}
	}
	return err
}

func (err *HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", err.Code, err.Message)
}
