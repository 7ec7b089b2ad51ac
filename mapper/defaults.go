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

// defaultHTTP maps every theme code to an HTTP status.
var defaultHTTP = map[code.Code]int{
	// Connectivity.
	code.NetworkDown: http.StatusServiceUnavailable,
	code.RadioKilled: http.StatusServiceUnavailable,
	code.HostDown:    http.StatusBadGateway,
	code.BrokenPipe:  http.StatusBadGateway,

	// Resources.
	code.ResourceExhausted: http.StatusServiceUnavailable,
	code.OutOfMemory:       http.StatusServiceUnavailable,
	code.OutOfSpace:        http.StatusInsufficientStorage,
	code.MessageTooLarge:   http.StatusRequestEntityTooLarge,

	// Lookup and state.
	code.NotFound:         http.StatusNotFound,
	code.OwnerDead:        http.StatusInternalServerError,
	code.Corrupted:        http.StatusInternalServerError,
	code.HardwarePoisoned: http.StatusInternalServerError,
	code.DeviceError:      http.StatusInternalServerError,
	code.Fault:            http.StatusInternalServerError,
	code.LinkLoop:         http.StatusLoopDetected,
	code.NoChildren:       http.StatusInternalServerError,

	// Caller errors.
	code.Invalid:     http.StatusBadRequest,
	code.Deadlock:    http.StatusConflict,
	code.BadMessage:  http.StatusBadRequest,
	code.Interrupted: http.StatusServiceUnavailable,

	// Access.
	code.PermissionDenied: http.StatusForbidden,
	code.NotPermitted:     http.StatusForbidden,

	code.Generic: http.StatusInternalServerError,
}

// defaultGRPC maps every theme code to a gRPC status code.
var defaultGRPC = map[code.Code]codes.Code{
	code.NetworkDown: codes.Unavailable,
	code.RadioKilled: codes.Unavailable,
	code.HostDown:    codes.Unavailable,
	code.BrokenPipe:  codes.Unavailable,

	code.ResourceExhausted: codes.ResourceExhausted,
	code.OutOfMemory:       codes.ResourceExhausted,
	code.OutOfSpace:        codes.ResourceExhausted,
	code.MessageTooLarge:   codes.InvalidArgument,

	code.NotFound:         codes.NotFound,
	code.OwnerDead:        codes.Aborted,
	code.Corrupted:        codes.DataLoss,
	code.HardwarePoisoned: codes.DataLoss,
	code.DeviceError:      codes.Internal,
	code.Fault:            codes.Internal,
	code.LinkLoop:         codes.FailedPrecondition,
	code.NoChildren:       codes.FailedPrecondition,

	code.Invalid:     codes.InvalidArgument,
	code.Deadlock:    codes.Aborted,
	code.BadMessage:  codes.InvalidArgument,
	code.Interrupted: codes.Canceled,

	code.PermissionDenied: codes.PermissionDenied,
	code.NotPermitted:     codes.PermissionDenied,

	code.Generic: codes.Unknown,
}
