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

// Package grpcx projects haiku errors onto gRPC statuses.
package grpcx

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dhaiku"
	"dirpx.dev/dhaiku/apis"
)

// Domain is the ErrorInfo domain of every status built here.
const Domain = "dhaiku.dirpx.dev"

// Status builds a gRPC status for err: the mapped code, the haiku as the
// message and an ErrorInfo detail carrying code, reason and errno. A nil
// err yields an OK status.
func Status(m apis.Mapper, err error) *gstatus.Status {
	if err == nil {
		return gstatus.New(gcodes.OK, "")
	}
	e := dhaiku.Wrap(err)
	st := m.Status(e.Code, e.Reason)

	base := gstatus.New(st.GRPC, e.Message)
	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(string(e.Code)),
		Domain: Domain,
		Metadata: map[string]string{
			"code":    string(e.Code),
			"reason":  string(e.Reason),
			"errno":   strconv.Itoa(int(e.Errno)),
			"generic": strconv.FormatBool(e.Generic),
		},
	}
	// Without the detail the status still carries code and haiku.
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor converts handler errors that carry a
// syscall.Errno or a *dhaiku.Error into haiku statuses. Other errors, and
// errors that already are gRPC statuses, pass through unchanged.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok {
			return nil, err
		}
		var de *dhaiku.Error
		if _, ok := dhaiku.ErrnoOf(err); !ok && !errors.As(err, &de) {
			return nil, err
		}
		return nil, Status(m, err).Err()
	}
}

// ExtractInfo returns the ErrorInfo detail of a status built by Status.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}
