/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx writes haiku errors as HTTP responses.
package httpx

import (
	"encoding/json"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dhaiku"
	"dirpx.dev/dhaiku/adapter"
	"dirpx.dev/dhaiku/apis"
)

// CodeHeader carries the theme code of the written error.
const CodeHeader = "X-Haiku-Code"

// Writer turns errors into HTTP responses using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the HTTP status of err and writes its view as JSON. A nil
// err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	e := dhaiku.Wrap(err)
	st := w.Mapper.Status(e.Code, e.Reason)
	view := adapter.ToView(e, st)

	b, mErr := marshal(view)
	if mErr != nil {
		b = fallbackBody(view.Code)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set(CodeHeader, view.Code)
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

func marshal(v apis.View) ([]byte, error) {
	body, err := structpb.NewStruct(fields(v))
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(body)
}

// fallbackBody carries only the code. It is used when the view holds
// text protobuf cannot encode, such as invalid UTF-8.
func fallbackBody(c string) []byte {
	b, _ := json.Marshal(map[string]string{"code": c})
	return b
}

// Handler wraps fn and writes any error it returns through w.
func (w Writer) Handler(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, fn(rw, r))
	})
}

func fields(v apis.View) map[string]any {
	lines := make([]any, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = l
	}
	m := map[string]any{
		"code":    v.Code,
		"errno":   v.Errno,
		"message": v.Message,
		"lines":   lines,
		"generic": v.Generic,
	}
	if v.Reason != "" {
		m["reason"] = v.Reason
	}
	return m
}
