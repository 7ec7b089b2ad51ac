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

// Package adapter converts haiku errors into transport-neutral views.
package adapter

import (
	"dirpx.dev/dhaiku"
	"dirpx.dev/dhaiku/apis"
)

// ToView projects e and its resolved status into an apis.View. A nil error
// yields the zero View.
func ToView(e *dhaiku.Error, st apis.Status) apis.View {
	if e == nil {
		return apis.View{}
	}
	return apis.View{
		Code:       string(e.Code),
		Reason:     string(e.Reason),
		Errno:      int(e.Errno),
		Message:    e.Message,
		Lines:      e.Lines(),
		Generic:    e.Generic,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}
