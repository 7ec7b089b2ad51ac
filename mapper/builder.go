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

package mapper

import (
	"net/http"

	"dirpx.dev/dhaiku/code"
	"google.golang.org/grpc/codes"
)

// reasonRule is a raw (code, reason) rule; the reason is validated in New.
type reasonRule struct {
	code   code.Code
	reason string
	val    int
}

type builder struct {
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]int

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]int

	httpReasons []reasonRule
	grpcReasons []reasonRule

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	return b
}
