// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/wrgl/devtools/pkg/api"
	"github.com/wrgl/devtools/pkg/api/payload"
)

func WriteJSON(rw http.ResponseWriter, v interface{}) {
	rw.Header().Set("Content-Type", api.CTJSON)
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	_, err = rw.Write(b)
	if err != nil {
		panic(err)
	}
}

func sendPayloadError(rw http.ResponseWriter, code int, obj *payload.Error) {
	rw.Header().Set("Content-Type", api.CTJSON)
	rw.WriteHeader(code)
	b, err := json.Marshal(obj)
	if err != nil {
		panic(err)
	}
	_, err = rw.Write(b)
	if err != nil {
		panic(err)
	}
}

func SendError(rw http.ResponseWriter, code int, message string) {
	sendPayloadError(rw, code, &payload.Error{Message: message})
}

func SendHTTPError(rw http.ResponseWriter, code int) {
	SendError(rw, code, http.StatusText(code))
}

// SendBadRequest reports err with status 400, including the failed input
// and CSV location when err carries them.
func SendBadRequest(rw http.ResponseWriter, err error) {
	sendPayloadError(rw, http.StatusBadRequest, payload.NewError(err))
}

// readJSON decodes the JSON request body into obj. It writes an error
// response and returns false when that fails.
func readJSON(rw http.ResponseWriter, r *http.Request, obj interface{}) bool {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != api.CTJSON {
		SendError(rw, http.StatusUnsupportedMediaType, "json expected")
		return false
	}
	b, ok := readBody(rw, r)
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, obj); err != nil {
		SendBadRequest(rw, fmt.Errorf("invalid request body: %v", err))
		return false
	}
	return true
}

func readBody(rw http.ResponseWriter, r *http.Request) ([]byte, bool) {
	b, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, api.MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			SendHTTPError(rw, http.StatusRequestEntityTooLarge)
			return nil, false
		}
		panic(fmt.Errorf("error reading request body: %v", err))
	}
	return b, true
}
